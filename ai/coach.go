// Package ai writes an encouraging coach note for an analysis. When no API
// key is configured it falls back to a canned note built from the numbers,
// so the feature works offline.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/whenkunda-blip/c-coach/models"
)

type Coach struct {
	client *openai.Client
}

func NewCoach(apiKey string) *Coach {
	if apiKey == "" {
		return &Coach{client: nil}
	}
	return &Coach{
		client: openai.NewClient(apiKey),
	}
}

// CoachNote produces a short motivational note about the analysis. The note
// is presentation-only and never feeds back into scoring.
func (c *Coach) CoachNote(analysis *models.Analysis) (string, error) {
	if c.client == nil {
		return c.fallbackNote(analysis), nil
	}

	gapNames := make([]string, 0, len(analysis.SkillGaps))
	for _, gap := range analysis.SkillGaps {
		gapNames = append(gapNames, gap.Skill)
	}

	prompt := fmt.Sprintf(`
A job seeker just compared their resume against a job description.

Readiness score: %.1f out of 100
Skill gaps: %s

Write a short, encouraging coaching note (under 150 words) that acknowledges where they stand and motivates them to work through their learning plan. Be specific about the gaps but keep the tone positive.`,
		analysis.ReadinessScore, strings.Join(gapNames, ", "))

	resp, err := c.client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens: 300,
		},
	)

	if err != nil {
		return c.fallbackNote(analysis), err
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *Coach) fallbackNote(analysis *models.Analysis) string {
	gapCount := len(analysis.SkillGaps)
	if gapCount == 0 {
		return fmt.Sprintf("Your readiness score is %.1f and no skill gaps were found. You're ready to apply - polish your application and go for it.", analysis.ReadinessScore)
	}
	return fmt.Sprintf("Your readiness score is %.1f with %d skill gaps to close. Work through your action plan one task at a time, starting with the critical skills, and your score will climb with every completed task.", analysis.ReadinessScore, gapCount)
}
