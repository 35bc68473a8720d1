package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spacesedan/sentireview/config"
	"github.com/spacesedan/sentireview/internal/cache"
	"github.com/spacesedan/sentireview/internal/clients"
	"github.com/spacesedan/sentireview/internal/textproc"
)

// Engine bundles the tokenizer and scorer chosen by configuration. Build one
// per process and pass it to the pipeline.
type Engine struct {
	Tokenizer
	PolarityScorer
	Backend string

	base    PolarityScorer
	hugot   *clients.HugotClient
	hugotMu sync.Mutex
	closers []func() error
}

// NewEngineFrom wires explicit collaborators, mainly for tests and embedding.
func NewEngineFrom(tokenizer Tokenizer, scorer PolarityScorer, backend string) *Engine {
	return &Engine{Tokenizer: tokenizer, PolarityScorer: scorer, Backend: backend}
}

func NewEngine(ctx context.Context, cfg config.Config) (*Engine, error) {
	e := &Engine{
		Tokenizer: textproc.NewProcessor(),
		Backend:   cfg.Scorer.Backend,
	}

	scorer, err := e.newScorer(cfg.Scorer)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	e.base = scorer

	scorer, err = e.withCache(ctx, cfg, scorer)
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	e.PolarityScorer = scorer

	slog.Info("[Engine] Sentiment engine ready",
		slog.String("backend", cfg.Scorer.Backend),
		slog.String("cache", cfg.Cache.Backend))
	return e, nil
}

func (e *Engine) newScorer(cfg config.ScorerConfig) (PolarityScorer, error) {
	switch cfg.Backend {
	case "vader":
		return NewVaderScorer(), nil
	case "hugot":
		client, err := e.HugotClient()
		if err != nil {
			return nil, err
		}
		return NewHugotScorer(client, cfg.Hugot.Model, cfg.Hugot.ModelDir)
	case "openai":
		client, err := clients.NewOpenAIClient(cfg.OpenAI.Timeout)
		if err != nil {
			return nil, err
		}
		return NewOpenAIScorer(client.Client, cfg.OpenAI.Model, cfg.OpenAI.RequestsPerSecond, cfg.OpenAI.Burst), nil
	case "remote":
		return NewRemoteScorer(clients.NewInferenceClient(cfg.Remote.Endpoint, cfg.Remote.Timeout)), nil
	default:
		return nil, fmt.Errorf("unknown scorer backend %q", cfg.Backend)
	}
}

func (e *Engine) withCache(_ context.Context, cfg config.Config, scorer PolarityScorer) (PolarityScorer, error) {
	c, closeCache, err := cache.Open(cfg.Cache)
	if err != nil {
		return nil, err
	}
	e.closers = append(e.closers, closeCache)
	if c == nil {
		return scorer, nil
	}
	return NewCachedScorer(scorer, c, cfg.Scorer.Backend, cfg.Cache.TTL), nil
}

// HugotClient lazily starts the shared hugot session.
func (e *Engine) HugotClient() (*clients.HugotClient, error) {
	e.hugotMu.Lock()
	defer e.hugotMu.Unlock()

	if e.hugot != nil {
		return e.hugot, nil
	}
	client, err := clients.NewHugotClient()
	if err != nil {
		return nil, err
	}
	e.hugot = client
	e.closers = append(e.closers, client.Close)
	return client, nil
}

// HealthCheck checks the underlying scorer when it can be unreachable.
// Local backends are always healthy.
func (e *Engine) HealthCheck(ctx context.Context) bool {
	scorer := e.base
	if scorer == nil {
		scorer = e.PolarityScorer
	}
	if hc, ok := scorer.(interface{ HealthCheck(context.Context) bool }); ok {
		return hc.HealthCheck(ctx)
	}
	return true
}

func (e *Engine) Normalizer() *Normalizer {
	return NewNormalizer(e.Tokenizer)
}

func (e *Engine) Classifier() *Classifier {
	return NewClassifier(e.PolarityScorer)
}

func (e *Engine) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}
