package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	INFERENCE_MAX_RETRIES     = 4
	INFERENCE_INITIAL_BACKOFF = 500 * time.Millisecond
	INFERENCE_MAX_BACKOFF     = 8 * time.Second
	USER_AGENT                = "sentireview/1.0 (+https://github.com/spacesedan/sentireview)"
)

type PolarityRequest struct {
	Text string `json:"text"`
}

type PolarityResponse struct {
	Polarity float64 `json:"polarity"`
}

// InferenceClient talks to an HTTP polarity service that accepts
// {"text": ...} and answers {"polarity": ...}.
type InferenceClient struct {
	Client         *http.Client
	Endpoint       string
	MaxRetries     int
	InitialBackoff time.Duration
}

func NewInferenceClient(endpoint string, timeout time.Duration) *InferenceClient {
	slog.Info("[InferenceClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", timeout))

	return &InferenceClient{
		Client:         &http.Client{Timeout: timeout},
		Endpoint:       endpoint,
		MaxRetries:     INFERENCE_MAX_RETRIES,
		InitialBackoff: INFERENCE_INITIAL_BACKOFF,
	}
}

// DoWithRetry retries transport errors and 5xx answers with exponential backoff.
func (c *InferenceClient) DoWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := c.InitialBackoff

	for attempt := 0; attempt < c.MaxRetries; attempt++ {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
		if reqErr != nil {
			return nil, fmt.Errorf("failed to build request: %w", reqErr)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", USER_AGENT)

		resp, err = c.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		msg := errMsg(err, resp)
		if resp != nil {
			resp.Body.Close()
			resp = nil
		}
		if err == nil {
			err = fmt.Errorf("server error: %s", msg)
		}

		slog.Warn("[InferenceClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", msg))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > INFERENCE_MAX_BACKOFF {
			backoff = INFERENCE_MAX_BACKOFF
		}
	}

	return nil, err
}

func (c *InferenceClient) GetPolarity(ctx context.Context, text string) (float64, error) {
	var result PolarityResponse
	start := time.Now()

	if err := c.postJSON(ctx, PolarityRequest{Text: text}, &result); err != nil {
		slog.Error("[InferenceClient] Polarity request failed",
			slog.Duration("elapsed", time.Since(start)))
		return 0, err
	}

	slog.Debug("[InferenceClient] Polarity request successful",
		slog.Duration("elapsed", time.Since(start)))
	return result.Polarity, nil
}

func (c *InferenceClient) postJSON(ctx context.Context, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	resp, err := c.DoWithRetry(ctx, body)
	if err != nil {
		slog.Error("[InferenceClient] Failed request after retries",
			slog.String("endpoint", c.Endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("inference service returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[InferenceClient] Failed to unmarshal response",
			slog.String("endpoint", c.Endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))

		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}

// HealthCheck sends one request without retries.
func (c *InferenceClient) HealthCheck(ctx context.Context) bool {
	body, _ := json.Marshal(PolarityRequest{Text: "ok"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		slog.Debug("[InferenceClient] Health check failed", slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode < 400
}
