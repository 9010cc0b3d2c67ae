package domain

import "context"

// Chunk is a bounded word-count slice of a larger source text, produced by
// splitting on whitespace word boundaries. Chunks are immutable once created.
type Chunk struct {
	Text  string
	Index int
}

// SearchResult is a stored payload together with its cosine similarity score
// against a query vector. Scores lie in [-1, 1].
type SearchResult struct {
	Payload string
	Score   float64
}

// Message is a single conversation turn.
type Message struct {
	Role    string
	Content string
}

// Embedder converts free text into a fixed-length, L2-normalized vector.
// Implementations are treated as black boxes; provider failures are reported
// as errors wrapping ErrEmbedding.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Completer produces raw generation text for a system instruction and a user
// prompt. Transport failures are reported as errors wrapping ErrGeneration.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	ModelName() string
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
