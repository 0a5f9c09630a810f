package handlers

import (
	"log"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-agronomist/db"
)

// GetRecommendation returns the live recommendation document.
func GetRecommendation(c *gin.Context, firestoreClient *firestore.Client) {
	pred, err := db.GetLatestRecommendation(firestoreClient)
	if err != nil {
		log.Printf("Error getting recommendation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pred == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recommendation found"})
		return
	}

	c.JSON(http.StatusOK, pred)
}
