// Package index orchestrates chunking, embedding and vector store
// population, and answers ranked retrieval queries over the result.
package index

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"

	"learnrag/internal/chunker"
	"learnrag/internal/domain"
	"learnrag/internal/vectorstore"
)

// Config tunes the coordinator. Zero values select defaults.
type Config struct {
	// WordsPerChunk bounds chunk size for embedding.
	WordsPerChunk int
	// CacheSize bounds the corpus-hash LRU of built stores.
	CacheSize int
	// Logger receives skip notices for chunks that failed to embed.
	Logger *log.Logger
}

// Coordinator builds vector stores from corpus text and queries them.
// Identical corpus text maps to the same cached store via a content hash,
// so repeat requests pay no re-embedding cost.
type Coordinator struct {
	embedder domain.Embedder
	chunker  *chunker.WordChunker
	cache    *storeCache
	logger   *log.Logger
}

func NewCoordinator(embedder domain.Embedder, cfg Config) *Coordinator {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{
		embedder: embedder,
		chunker:  chunker.NewWordChunker(cfg.WordsPerChunk),
		cache:    newStoreCache(cfg.CacheSize),
		logger:   logger,
	}
}

// GetOrBuild returns the store for corpus, building it on first sight.
// Chunks whose embedding call fails are skipped with a log notice; the
// store is built from whatever embeddings succeed. When nothing embeds
// (or the corpus is empty) it returns domain.ErrNoIndex so callers can
// fall back to raw-text context.
func (c *Coordinator) GetOrBuild(ctx context.Context, corpus string) (*vectorstore.Store, error) {
	key := corpusKey(corpus)
	if store, ok := c.cache.get(key); ok {
		return store, nil
	}

	chunks := c.chunker.Chunk(corpus)
	if len(chunks) == 0 {
		return nil, domain.ErrNoIndex
	}
	texts, vectors := c.embedChunks(ctx, chunks)
	if len(vectors) == 0 {
		return nil, domain.ErrNoIndex
	}

	store, err := vectorstore.New(len(vectors[0]))
	if err != nil {
		return nil, err
	}
	if err := store.Add(texts, vectors, nil); err != nil {
		return nil, err
	}
	return c.cache.putIfAbsent(key, store), nil
}

// embedChunks embeds all chunks, trying one batch call first and degrading
// to per-chunk calls with skip-and-continue when the batch fails.
func (c *Coordinator) embedChunks(ctx context.Context, chunks []domain.Chunk) ([]string, [][]float64) {
	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}
	if vectors, err := c.embedder.EmbedBatch(ctx, texts); err == nil && len(vectors) == len(texts) {
		return texts, vectors
	}

	kept := make([]string, 0, len(chunks))
	vectors := make([][]float64, 0, len(chunks))
	for _, ch := range chunks {
		vec, err := c.embedder.Embed(ctx, ch.Text)
		if err != nil {
			c.logger.Printf("index: skipping chunk %d: %v", ch.Index, err)
			continue
		}
		kept = append(kept, ch.Text)
		vectors = append(vectors, vec)
	}
	return kept, vectors
}

// Query embeds the query text and returns the topK payload texts in ranked
// order. A nil store yields domain.ErrNoIndex.
func (c *Coordinator) Query(ctx context.Context, store *vectorstore.Store, query string, topK int) ([]string, error) {
	if store == nil {
		return nil, domain.ErrNoIndex
	}
	vec, err := c.embedder.Embed(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrEmbedding) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrEmbedding, err)
	}
	results, err := store.Search(vec, topK)
	if err != nil {
		return nil, err
	}
	payloads := make([]string, len(results))
	for i, r := range results {
		payloads[i] = r.Payload
	}
	return payloads, nil
}

// corpusKey is the deterministic content hash used to deduplicate store
// construction for identical corpus text.
func corpusKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
