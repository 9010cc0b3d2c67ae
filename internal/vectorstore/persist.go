package vectorstore

import (
	"encoding/json"
	"fmt"
	"os"

	"learnrag/internal/domain"
)

// record is the on-disk layout: one serialized unit holding the full vector
// array and payload list, so a round trip is lossless.
type record struct {
	Dim      int         `json:"dim"`
	Vectors  [][]float64 `json:"vectors"`
	Payloads []string    `json:"payloads"`
	IDs      []string    `json:"ids"`
}

// Save writes the whole store to path as a single JSON record.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	rec := record{
		Dim:      s.dim,
		Vectors:  s.vectors,
		Payloads: s.payloads,
		IDs:      s.ids,
	}
	s.mu.RUnlock()
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// Load reads a store previously written by Save. Records whose vectors
// disagree with the declared dimension, or whose payload and id counts do
// not match the vector count, are rejected.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode store: %w", err)
	}
	s, err := New(rec.Dim)
	if err != nil {
		return nil, err
	}
	for i, v := range rec.Vectors {
		if len(v) != rec.Dim {
			return nil, fmt.Errorf("%w: stored vector %d has dimension %d, record declares %d", domain.ErrDimensionMismatch, i, len(v), rec.Dim)
		}
	}
	if len(rec.Payloads) != len(rec.Vectors) || len(rec.IDs) != len(rec.Vectors) {
		return nil, fmt.Errorf("corrupt store record: %d vectors, %d payloads, %d ids", len(rec.Vectors), len(rec.Payloads), len(rec.IDs))
	}
	s.vectors = rec.Vectors
	s.payloads = rec.Payloads
	s.ids = rec.IDs
	return s, nil
}
