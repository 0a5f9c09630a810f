package handlers

import (
	"context"
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-agronomist/advisory"
	"go-agronomist/db"
)

// GenerateAdvisory produces farmer-facing prose for the live recommendation.
func GenerateAdvisory(c *gin.Context, firestoreClient *firestore.Client, openaiClient *openai.Client) {
	pred, err := db.GetLatestRecommendation(firestoreClient)
	if err != nil {
		log.Printf("Error getting recommendation for advisory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pred == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recommendation to advise on"})
		return
	}

	text, err := advisory.Generate(context.Background(), openaiClient, *pred)
	if err != nil {
		log.Printf("Error generating advisory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendation_id": pred.ID,
		"advisory":          text,
	})
}
