// Package embedding turns normalized reviews into vectors for similarity checks.
package embedding

import (
	"context"
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrDimension is returned when two vectors cannot be compared.
var ErrDimension = errors.New("embedding dimensions differ")

type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Cosine returns the cosine similarity of a and b. A zero vector has
// similarity 0 with everything.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, ErrDimension
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return floats.Dot(a, b) / (na * nb), nil
}

// Similarity embeds both texts and compares them.
func Similarity(ctx context.Context, e Embedder, a, b string) (float64, error) {
	vecs, err := e.Embed(ctx, []string{a, b})
	if err != nil {
		return 0, err
	}
	if len(vecs) != 2 {
		return 0, errors.New("embedder returned wrong number of vectors")
	}
	return Cosine(vecs[0], vecs[1])
}
