package clients

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
)

// HugotClient owns a single hugot session shared by every local model pipeline.
type HugotClient struct {
	Session *hugot.Session
	mu      sync.Mutex
}

// newHugotSession starts an ONNX Runtime backed session; the onnxruntime
// shared library must be installed where hugot looks for it.
var newHugotSession = func() (*hugot.Session, error) {
	return hugot.NewORTSession()
}

func NewHugotClient() (*HugotClient, error) {
	session, err := newHugotSession()
	if err != nil {
		return nil, fmt.Errorf("[HugotClient] Failed to initialize Hugot session: %w", err)
	}
	slog.Info("[HugotClient] Hugot session initialized")
	return &HugotClient{Session: session}, nil
}

// ModelPath is where hugot stores a downloaded model under dir.
func ModelPath(dir, modelName string) string {
	return filepath.Join(dir, strings.ReplaceAll(modelName, "/", "_"))
}

// EnsureModel downloads modelName into dir unless it is already there.
func (h *HugotClient) EnsureModel(modelName, dir string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("[HugotClient] Failed to create model directory: %w", err)
	}

	path := ModelPath(dir, modelName)
	if _, err := os.Stat(path); err == nil {
		slog.Info("[HugotClient] Using existing model", slog.String("path", path))
		return path, nil
	}

	slog.Info("[HugotClient] Model not found, downloading...", slog.String("model", modelName))
	downloaded, err := hugot.DownloadModel(modelName, dir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("[HugotClient] Failed to download %s: %w", modelName, err)
	}
	slog.Info("[HugotClient] Model downloaded successfully", slog.String("path", downloaded))
	return downloaded, nil
}

func (h *HugotClient) Close() error {
	if h.Session == nil {
		return nil
	}
	return h.Session.Destroy()
}
