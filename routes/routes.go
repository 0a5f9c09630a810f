package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-agronomist/handlers"
	"go-agronomist/mlmodel"
)

func SetupRouter(firestoreClient *firestore.Client, classifier mlmodel.Classifier, openaiClient *openai.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Agronomist!",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// api routes
	api := r.Group("/api/agronomist")
	{
		api.POST("/predict", func(c *gin.Context) {
			handlers.PredictFertilizer(c, firestoreClient, classifier)
		})
		api.GET("/recommendation", func(c *gin.Context) {
			handlers.GetRecommendation(c, firestoreClient)
		})
		api.GET("/quantity-calculator", handlers.QuantityCalculator)
		api.POST("/advisory", func(c *gin.Context) {
			handlers.GenerateAdvisory(c, firestoreClient, openaiClient)
		})
		api.GET("/simulate", handlers.SimulateReadings)
	}

	return r
}
