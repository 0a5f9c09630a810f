package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"go-agronomist/types"
)

// Sensor kits in the field write raw readings here.
const readingsCollection = "sensor-readings"

// GetLatestSensorReading returns the newest reading, or (nil, nil) when the
// collection is empty.
func GetLatestSensorReading(client *firestore.Client) (*types.SensorReading, error) {
	ctx := context.Background()

	docs, err := client.Collection(readingsCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query sensor readings: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var reading types.SensorReading
	if err := docs[0].DataTo(&reading); err != nil {
		return nil, fmt.Errorf("error converting sensor reading document: %w", err)
	}
	return &reading, nil
}
