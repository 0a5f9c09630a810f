package advisory

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-agronomist/types"
)

const maxAdvisoryTokens = 300

// Generate turns a prediction into short farmer-facing guidance. The numbers
// come straight from the recommendation; the model only rephrases them, so the
// prompt pins every figure it is allowed to use.
func Generate(ctx context.Context, client *openai.Client, pred types.PredictionResponse) (string, error) {
	prompt := buildPrompt(pred)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an agricultural extension officer advising smallholder maize farmers. Use only the figures provided; do not invent quantities or products.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens: maxAdvisoryTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("advisory generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("advisory generation returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func buildPrompt(pred types.PredictionResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write 3-4 plain sentences of fertilizer guidance for a maize farmer based on this recommendation.\n\n")
	fmt.Fprintf(&b, "Soil status: pH %s, rainfall %s, N %s, P %s, K %s.\n",
		pred.PhStatus, pred.RainfallStatus, pred.NPKStatus.N, pred.NPKStatus.P, pred.NPKStatus.K)
	fmt.Fprintf(&b, "Application method: %s.\n", pred.FertilizerApplication)

	rec := pred.QuantityRecommendation
	if rec == nil {
		return b.String()
	}

	fmt.Fprintf(&b, "Primary fertilizer: %s at %.1f %s.\n", rec.Primary.Name, rec.Primary.Quantity, rec.Primary.Unit)
	if rec.Secondary != nil {
		fmt.Fprintf(&b, "Secondary fertilizer: %s at %.1f %s.\n", rec.Secondary.Name, rec.Secondary.Quantity, rec.Secondary.Unit)
	}
	for _, stage := range rec.Schedule {
		fmt.Fprintf(&b, "Stage %s (%s): %.1f kg/ha of %s", stage.Name, stage.Timing, stage.Quantity, stage.Fertilizer)
		if stage.Secondary != nil {
			fmt.Fprintf(&b, " plus %.1f kg/ha of %s", stage.Secondary.Quantity, stage.Secondary.Fertilizer)
		}
		b.WriteString(".\n")
	}
	if rec.SoilAmendment != nil {
		fmt.Fprintf(&b, "Soil amendment: %s at %.1f %s. %s.\n",
			rec.SoilAmendment.Name, rec.SoilAmendment.Quantity, rec.SoilAmendment.Unit, rec.SoilAmendment.Application)
	}

	return b.String()
}
