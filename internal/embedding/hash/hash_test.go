package hash

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vecNorm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func TestEmbedDeterministic(t *testing.T) {
	e := NewEmbedder(64)
	a, err := e.Embed(context.Background(), "concurrency in Go uses goroutines")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "concurrency in Go uses goroutines")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedUnitNorm(t *testing.T) {
	e := NewEmbedder(32)
	v, err := e.Embed(context.Background(), "channels synchronize goroutines")
	require.NoError(t, err)
	assert.Len(t, v, 32)
	assert.InDelta(t, 1.0, vecNorm(v), 1e-9)
}

func TestEmbedEmptyTextZeroVector(t *testing.T) {
	e := NewEmbedder(16)
	v, err := e.Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, v, 16)
	assert.Zero(t, vecNorm(v))
}

func TestEmbedStopwordsOnly(t *testing.T) {
	e := NewEmbedder(16)
	v, err := e.Embed(context.Background(), "the and of to in")
	require.NoError(t, err)
	assert.Zero(t, vecNorm(v))
}

func TestEmbedCaseInsensitive(t *testing.T) {
	e := NewEmbedder(64)
	a, _ := e.Embed(context.Background(), "Goroutines Scheduling")
	b, _ := e.Embed(context.Background(), "goroutines scheduling")
	assert.Equal(t, a, b)
}

func TestEmbedSimilarTextsScoreHigher(t *testing.T) {
	e := NewEmbedder(128)
	ctx := context.Background()
	base, _ := e.Embed(ctx, "goroutines run concurrently scheduled runtime")
	near, _ := e.Embed(ctx, "goroutines scheduled concurrently")
	far, _ := e.Embed(ctx, "bread rises slowly overnight yeast")

	dot := func(a, b []float64) float64 {
		s := 0.0
		for i := range a {
			s += a[i] * b[i]
		}
		return s
	}
	assert.Greater(t, dot(base, near), dot(base, far))
}

func TestEmbedBatchMatchesEmbed(t *testing.T) {
	e := NewEmbedder(32)
	ctx := context.Background()
	texts := []string{"first text", "second text", ""}
	batch, err := e.EmbedBatch(ctx, texts)
	require.NoError(t, err)
	require.Len(t, batch, len(texts))
	for i, text := range texts {
		single, err := e.Embed(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, single, batch[i])
	}
}

func TestNewEmbedderDefaults(t *testing.T) {
	e := NewEmbedder(0)
	assert.Equal(t, DefaultDimension, e.Dimension())
	assert.Equal(t, "hash", e.Name())
}
