// Package extract recovers structured payloads embedded in noisy language
// model output, such as JSON wrapped in explanatory prose or code fences.
package extract

import (
	"encoding/json"
	"sort"
	"strings"
)

// JSON returns the best parseable JSON substring of raw. The full trimmed
// text is tried first. Otherwise a single scan records every well-nested
// bracketed span (objects and arrays), and candidates are tried longest
// first: models often wrap the intended payload in prose containing
// incidental shorter fragments, so the longest valid span is the most likely
// to be the complete payload. Returns false when nothing parses.
func JSON(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}
	if json.Valid([]byte(text)) {
		return text, true
	}

	type open struct {
		ch  byte
		pos int
	}
	var stack []open
	var candidates []string
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{', '[':
			stack = append(stack, open{text[i], i})
		case '}', ']':
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if (top.ch == '{' && text[i] == '}') || (top.ch == '[' && text[i] == ']') {
				candidates = append(candidates, text[top.pos:i+1])
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i]) > len(candidates[j])
	})
	for _, c := range candidates {
		if json.Valid([]byte(c)) {
			return c, true
		}
	}
	return "", false
}

// Parse extracts and decodes the best JSON substring of raw into a generic
// value. Returns false when raw carries no parseable structure.
func Parse(raw string) (any, bool) {
	s, ok := JSON(raw)
	if !ok {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}
