package clients

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openAIRequestTimeout = 60 * time.Second

type OpenAIClient struct {
	Client *openai.Client
}

// NewOpenAIClient builds a client from OPENAI_API_KEY (and OPENAI_BASE_URL when set).
func NewOpenAIClient(timeout time.Duration) (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}
	return NewOpenAIClientWithBaseURL(apiKey, os.Getenv("OPENAI_BASE_URL"), timeout), nil
}

func NewOpenAIClientWithBaseURL(apiKey, baseURL string, timeout time.Duration) *OpenAIClient {
	if timeout <= 0 {
		timeout = openAIRequestTimeout
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	slog.Info("[OpenAIClient] OpenAI client initialized",
		slog.Duration("timeout", timeout))

	return &OpenAIClient{Client: openai.NewClientWithConfig(config)}
}
