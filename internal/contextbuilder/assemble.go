// Package contextbuilder merges retrieved chunks with recency-weighted
// conversation history into one length-bounded context string.
package contextbuilder

import (
	"strings"

	"learnrag/internal/domain"
)

const (
	separator = "\n\n"

	// recentTurns is how many trailing conversation turns are always kept.
	recentTurns = 2
)

// Assemble builds the context passed to the generation collaborator.
// Retrieved blocks come first in rank order (deduplicated by exact text,
// first occurrence wins), then the most recent conversation turns, then the
// literal current query. When the result would exceed maxChars, only the
// head of the retrieved portion is truncated; the tail (recent turns plus
// the query) is never cut, so recency survives the length cap.
// maxChars <= 0 disables the cap.
func Assemble(retrieved []string, history []domain.Message, query string, maxChars int) string {
	head := dedupe(retrieved)

	var tail []string
	if len(history) > recentTurns {
		history = history[len(history)-recentTurns:]
	}
	for _, m := range history {
		role := m.Role
		if role == "" {
			role = "user"
		}
		tail = append(tail, role+": "+m.Content)
	}
	tail = append(tail, "Latest user query: "+query)

	full := strings.Join(append(append([]string{}, head...), tail...), separator)
	if maxChars <= 0 || len([]rune(full)) <= maxChars {
		return full
	}

	tailStr := strings.Join(tail, separator)
	budget := maxChars - len([]rune(tailStr)) - len(separator)
	if budget <= 0 {
		// The guaranteed tail alone fills the cap; keep it whole anyway.
		return tailStr
	}
	headStr := strings.Join(head, separator)
	if r := []rune(headStr); len(r) > budget {
		headStr = string(r[:budget])
	}
	if headStr == "" {
		return tailStr
	}
	return headStr + separator + tailStr
}

func dedupe(blocks []string) []string {
	seen := make(map[string]struct{}, len(blocks))
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
