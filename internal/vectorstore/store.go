package vectorstore

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"learnrag/internal/domain"
)

// epsilon substitutes for a zero norm so cosine against a zero vector
// yields zero instead of dividing by zero. Nonzero norms are used exactly,
// keeping mathematically tied scores equal so insertion order breaks ties.
const epsilon = 1e-12

// Store is an append-only in-memory vector store over exact brute-force
// cosine similarity. Every stored vector has the fixed dimension chosen at
// creation. Entries are never updated or deleted; ties in search scores are
// broken by insertion order. Brute force is acceptable here because corpora
// are single-document or single-conversation sized.
type Store struct {
	mu       sync.RWMutex
	dim      int
	vectors  [][]float64
	payloads []string
	ids      []string
}

// New creates an empty store of the given fixed dimension.
func New(dim int) (*Store, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: invalid dimension %d", domain.ErrDimensionMismatch, dim)
	}
	return &Store{dim: dim}, nil
}

// Dimension returns the fixed vector dimension of the store.
func (s *Store) Dimension() int { return s.dim }

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payloads)
}

// Add appends payload texts with their vectors. texts and vectors must have
// equal length and every vector must match the store dimension. When ids is
// nil or mismatched in length, ids default to the stringified insertion
// index. Storage grows without bound; there is no eviction.
func (s *Store) Add(texts []string, vectors [][]float64, ids []string) error {
	if len(texts) != len(vectors) {
		return fmt.Errorf("%w: %d texts but %d vectors", domain.ErrDimensionMismatch, len(texts), len(vectors))
	}
	for i, v := range vectors {
		if len(v) != s.dim {
			return fmt.Errorf("%w: vector %d has dimension %d, store expects %d", domain.ErrDimensionMismatch, i, len(v), s.dim)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	base := len(s.payloads)
	s.vectors = append(s.vectors, vectors...)
	s.payloads = append(s.payloads, texts...)
	if len(ids) == len(texts) {
		s.ids = append(s.ids, ids...)
	} else {
		for i := range texts {
			s.ids = append(s.ids, strconv.Itoa(base+i))
		}
	}
	return nil
}

// Search scans every stored vector and returns the topK highest-scoring
// payloads in descending cosine similarity order. Earlier entries rank first
// on equal scores. An empty store yields no results.
func (s *Store) Search(query []float64, topK int) ([]domain.SearchResult, error) {
	if len(query) != s.dim {
		return nil, fmt.Errorf("%w: query has dimension %d, store expects %d", domain.ErrDimensionMismatch, len(query), s.dim)
	}
	if topK <= 0 {
		topK = 5
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.vectors) == 0 {
		return nil, nil
	}
	qNorm := safeNorm(query)
	idxs := make([]int, len(s.vectors))
	scores := make([]float64, len(s.vectors))
	for i, v := range s.vectors {
		idxs[i] = i
		scores[i] = dot(v, query) / (safeNorm(v) * qNorm)
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return scores[idxs[a]] > scores[idxs[b]]
	})
	if topK > len(idxs) {
		topK = len(idxs)
	}
	results := make([]domain.SearchResult, 0, topK)
	for _, j := range idxs[:topK] {
		results = append(results, domain.SearchResult{Payload: s.payloads[j], Score: scores[j]})
	}
	return results, nil
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func safeNorm(v []float64) float64 {
	if n := norm(v); n > 0 {
		return n
	}
	return epsilon
}
