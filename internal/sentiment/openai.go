package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	openAIRetryAttempts  = 3
	openAIRetryBackoff   = 2 * time.Second
	openAIPolarityPrompt = `You score the sentiment of product reviews.
The review has been lowercased and stripped of stop words and punctuation.
Reply only with a JSON object of the form {"polarity": <number>} where the
number is between -1.0 (very negative) and 1.0 (very positive), and 0 means neutral.`
)

// OpenAIScorer asks a chat model for a polarity, throttled by a token bucket.
type OpenAIScorer struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	backoff time.Duration
}

func NewOpenAIScorer(client *openai.Client, model string, requestsPerSecond float64, burst int) *OpenAIScorer {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &OpenAIScorer{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(limit, burst),
		backoff: openAIRetryBackoff,
	}
}

func (s *OpenAIScorer) Polarity(ctx context.Context, text string) (float64, error) {
	var lastErr error
	backoff := s.backoff

	for attempt := 0; attempt < openAIRetryAttempts; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return 0, err
		}

		resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: openAIPolarityPrompt},
				{Role: openai.ChatMessageRoleUser, Content: text},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: 0,
		})
		if err == nil {
			if len(resp.Choices) == 0 {
				return 0, errors.New("[OpenAIScorer] completion returned no choices")
			}
			return parsePolarity(resp.Choices[0].Message.Content)
		}

		lastErr = err
		slog.Warn("[OpenAIScorer] Completion failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return 0, fmt.Errorf("[OpenAIScorer] failed after %d attempts: %w", openAIRetryAttempts, lastErr)
}

func parsePolarity(content string) (float64, error) {
	var payload struct {
		Polarity *float64 `json:"polarity"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return 0, fmt.Errorf("[OpenAIScorer] unreadable response: %w", err)
	}
	if payload.Polarity == nil {
		return 0, errors.New(`[OpenAIScorer] response has no "polarity" field`)
	}
	return *payload.Polarity, nil
}
