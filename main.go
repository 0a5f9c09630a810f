package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-agronomist/cronjobs"
	"go-agronomist/db"
	"go-agronomist/mlmodel"
	"go-agronomist/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Print and check env
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Classifier client for the hosted model
	classifier := mlmodel.NewClient()
	fmt.Println("Classifier URL: ", classifier.URL)

	openaiClient := openai.NewClient(apiKey)

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient, classifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(firestoreClient, classifier, openaiClient)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
