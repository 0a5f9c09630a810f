package mlmodel

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"
)

// Hosted AdaBoost classifier trained on the maize fertilizer dataset.
const defaultModelURL = "https://maizefertmodel-165032778338.us-central1.run.app/classify/"

// Classifier produces a fertilizer-category label from an engineered feature
// vector. The HTTP client below is the production implementation; the cron
// refresher and tests can swap in stubs.
type Classifier interface {
	Classify(features map[string]float64) (string, error)
}

type MLRequest struct {
	Features map[string]float64 `json:"features"`
}

type MLResponse struct {
	FertilizerType string             `json:"fertilizer_type"`
	Probabilities  map[string]float64 `json:"probabilities,omitempty"`
}

// Client calls the deployed model service over HTTP.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient builds a Client against MODEL_URL, falling back to the deployed
// Cloud Run service.
func NewClient() *Client {
	url := os.Getenv("MODEL_URL")
	if url == "" {
		url = defaultModelURL
	}
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Classify(features map[string]float64) (string, error) {
	payloadBytes, err := json.Marshal(MLRequest{Features: features})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.URL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("ML model returned status: " + resp.Status)
	}

	var mlResp MLResponse
	if err := json.NewDecoder(resp.Body).Decode(&mlResp); err != nil {
		return "", err
	}
	if mlResp.FertilizerType == "" {
		return "", errors.New("ML model returned an empty fertilizer type")
	}

	return mlResp.FertilizerType, nil
}
