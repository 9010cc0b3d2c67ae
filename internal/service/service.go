// Package service wires the retrieval pipeline to the completion
// collaborator: ingest text, answer questions over it, and generate
// structured roadmaps and learning items.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"learnrag/internal/contextbuilder"
	"learnrag/internal/domain"
	"learnrag/internal/index"
	"learnrag/internal/llm"
	"learnrag/internal/repair"
	"learnrag/internal/vectorstore"
)

// Config tunes the service. Zero values select defaults.
type Config struct {
	TopK             int
	MaxContextChars  int
	SummarySentences int
}

// Service owns the active corpus and conversation history for one session.
// Structured outputs always come back schema-conformant: malformed model
// text is repaired, never surfaced as an error.
type Service struct {
	coordinator *index.Coordinator
	completer   domain.Completer
	summarizer  domain.Summarizer

	topK             int
	maxContextChars  int
	summarySentences int

	mu      sync.Mutex
	corpus  string
	history []domain.Message
}

func New(coordinator *index.Coordinator, completer domain.Completer, summarizer domain.Summarizer, cfg Config) *Service {
	if cfg.TopK <= 0 {
		cfg.TopK = 6
	}
	if cfg.MaxContextChars <= 0 {
		cfg.MaxContextChars = 4000
	}
	if cfg.SummarySentences <= 0 {
		cfg.SummarySentences = 5
	}
	return &Service{
		coordinator:      coordinator,
		completer:        completer,
		summarizer:       summarizer,
		topK:             cfg.TopK,
		maxContextChars:  cfg.MaxContextChars,
		summarySentences: cfg.SummarySentences,
	}
}

// IngestText sets the active corpus, eagerly builds its index, resets the
// conversation, and returns a short summary of the document. A corpus that
// cannot be indexed is still accepted: answering falls back to raw text.
func (s *Service) IngestText(ctx context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("empty document")
	}
	s.mu.Lock()
	s.corpus = trimmed
	s.history = nil
	s.mu.Unlock()

	if _, err := s.coordinator.GetOrBuild(ctx, trimmed); err != nil && !errors.Is(err, domain.ErrNoIndex) {
		return "", err
	}
	summary, err := s.summarizer.Summarize(trimmed, s.summarySentences)
	if err != nil {
		return "", err
	}
	return summary, nil
}

// BuildIndex exposes index construction for the active-corpus-independent
// callers: it builds (or fetches) the store for arbitrary text.
func (s *Service) BuildIndex(ctx context.Context, text string) (*vectorstore.Store, error) {
	return s.coordinator.GetOrBuild(ctx, text)
}

// Retrieve returns the topK most relevant payloads of store for query.
func (s *Service) Retrieve(ctx context.Context, store *vectorstore.Store, query string, topK int) ([]string, error) {
	return s.coordinator.Query(ctx, store, query, topK)
}

// Answer retrieves context for query from the active corpus, assembles it
// with the recent conversation turns, asks the completer, and appends the
// exchange to the history. When no index is available the raw corpus text
// serves as context.
func (s *Service) Answer(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("empty query")
	}
	s.mu.Lock()
	corpus := s.corpus
	history := append([]domain.Message(nil), s.history...)
	s.mu.Unlock()

	retrieved := s.retrieve(ctx, corpus, query, s.topK)
	assembled := contextbuilder.Assemble(retrieved, history, query, s.maxContextChars)

	answer, err := s.completer.Complete(ctx, llm.AnswerSystemPrompt, llm.AnswerPrompt(query, assembled))
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.history = append(s.history,
		domain.Message{Role: "user", Content: query},
		domain.Message{Role: "assistant", Content: answer},
	)
	s.mu.Unlock()
	return answer, nil
}

// Roadmap generates a schema-conformant topic roadmap for subject, using
// retrieved corpus context when available. Only transport failures surface
// as errors; malformed output is repaired.
func (s *Service) Roadmap(ctx context.Context, subject string) ([]domain.Topic, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, errors.New("empty subject")
	}
	raw, err := s.completer.Complete(ctx, llm.RoadmapSystemPrompt, llm.RoadmapPrompt(subject, s.corpusContext(ctx, subject)))
	if err != nil {
		return nil, err
	}
	return repair.NormalizeTopics(raw), nil
}

// SubtopicItems generates QA/STUDY items for subtopic, using retrieved
// corpus context when available.
func (s *Service) SubtopicItems(ctx context.Context, subtopic string) ([]domain.Item, error) {
	subtopic = strings.TrimSpace(subtopic)
	if subtopic == "" {
		return nil, errors.New("empty subtopic")
	}
	raw, err := s.completer.Complete(ctx, llm.ItemsSystemPrompt, llm.ItemsPrompt(subtopic, s.corpusContext(ctx, subtopic)))
	if err != nil {
		return nil, err
	}
	return repair.NormalizeItems(raw), nil
}

// History returns a copy of the conversation so far.
func (s *Service) History() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message(nil), s.history...)
}

// retrieve returns ranked context blocks for query, falling back to the raw
// corpus when the index is unavailable or retrieval fails.
func (s *Service) retrieve(ctx context.Context, corpus, query string, topK int) []string {
	if corpus == "" {
		return nil
	}
	store, err := s.coordinator.GetOrBuild(ctx, corpus)
	if err == nil {
		if blocks, qerr := s.coordinator.Query(ctx, store, query, topK); qerr == nil && len(blocks) > 0 {
			return blocks
		}
	}
	return []string{corpus}
}

// corpusContext builds a plain length-bounded context string for structured
// generation prompts. No conversation tail is involved here.
func (s *Service) corpusContext(ctx context.Context, query string) string {
	s.mu.Lock()
	corpus := s.corpus
	s.mu.Unlock()
	if corpus == "" {
		return ""
	}
	blocks := s.retrieve(ctx, corpus, query, s.topK)
	joined := strings.Join(blocks, "\n\n")
	if r := []rune(joined); len(r) > s.maxContextChars {
		joined = string(r[:s.maxContextChars])
	}
	return joined
}
