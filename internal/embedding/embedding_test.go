package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	s, err := Cosine([]float64{1, 0}, []float64{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	s, err = Cosine([]float64{1, 0}, []float64{0, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-12)

	s, err = Cosine([]float64{1, 2}, []float64{-2, -4})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, s, 1e-12)

	s, err = Cosine([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)

	_, err = Cosine([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimension)
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, []float64{0.5, -2}, toFloat64([]float32{0.5, -2}))
}

type fixedEmbedder struct {
	vecs [][]float64
	err  error
}

func (f fixedEmbedder) Embed(context.Context, []string) ([][]float64, error) {
	return f.vecs, f.err
}

func TestSimilarity(t *testing.T) {
	ctx := context.Background()

	s, err := Similarity(ctx, fixedEmbedder{vecs: [][]float64{{3, 4}, {3, 4}}}, "a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	_, err = Similarity(ctx, fixedEmbedder{vecs: [][]float64{{1}}}, "a", "b")
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = Similarity(ctx, fixedEmbedder{err: boom}, "a", "b")
	assert.ErrorIs(t, err, boom)
}
