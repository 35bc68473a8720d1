package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferenceClient_GetPolarity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req PolarityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "great phone", req.Text)
		assert.Equal(t, USER_AGENT, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"polarity": 0.75}`))
	}))
	defer srv.Close()

	c := NewInferenceClient(srv.URL, time.Second)
	got, err := c.GetPolarity(context.Background(), "great phone")
	require.NoError(t, err)
	assert.Equal(t, 0.75, got)
}

func TestInferenceClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"polarity": -0.5}`))
	}))
	defer srv.Close()

	c := NewInferenceClient(srv.URL, time.Second)
	c.InitialBackoff = time.Millisecond

	got, err := c.GetPolarity(context.Background(), "broke")
	require.NoError(t, err)
	assert.Equal(t, -0.5, got)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestInferenceClient_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewInferenceClient(srv.URL, time.Second)
	c.InitialBackoff = time.Millisecond
	c.MaxRetries = 2

	_, err := c.GetPolarity(context.Background(), "anything")
	assert.Error(t, err)
}

func TestInferenceClient_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewInferenceClient(srv.URL, time.Second)
	_, err := c.GetPolarity(context.Background(), "anything")
	assert.ErrorContains(t, err, "unmarshal")
}

func TestInferenceClient_ClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewInferenceClient(srv.URL, time.Second)
	_, err := c.GetPolarity(context.Background(), "anything")
	assert.ErrorContains(t, err, "400")
}

func TestInferenceClient_HealthCheck(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"polarity": 0.1}`))
	}))
	defer healthy.Close()
	assert.True(t, NewInferenceClient(healthy.URL, time.Second).HealthCheck(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	assert.False(t, NewInferenceClient(down.URL, time.Second).HealthCheck(context.Background()))
}
