package clients

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/knights-analytics/hugot"
	"github.com/stretchr/testify/assert"
)

func TestModelPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("models", "distilbert_distilbert-base-uncased-finetuned-sst-2-english"),
		ModelPath("models", "distilbert/distilbert-base-uncased-finetuned-sst-2-english"))
	assert.Equal(t, filepath.Join("m", "plain"), ModelPath("m", "plain"))
}

func TestNewHugotClient_SessionError(t *testing.T) {
	orig := newHugotSession
	t.Cleanup(func() { newHugotSession = orig })

	newHugotSession = func() (*hugot.Session, error) {
		return nil, errors.New("libonnxruntime.so: cannot open shared object file")
	}

	client, err := NewHugotClient()
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "Failed to initialize Hugot session")
	assert.ErrorContains(t, err, "libonnxruntime.so")
}

func TestHugotClient_CloseWithoutSession(t *testing.T) {
	assert.NoError(t, (&HugotClient{}).Close())
}
