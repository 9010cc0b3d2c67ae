package repair

import (
	"sort"
	"strings"

	"learnrag/internal/domain"
	"learnrag/internal/extract"
)

const (
	// itemSnippetLimit caps the raw-text snippet carried by a fallback
	// STUDY item.
	itemSnippetLimit = 3000

	noItemContent = "No content generated"
)

// Exact type synonym sets, checked before the looser contains-Q-and-A
// heuristic so that precedence stays explicit.
var (
	qaTokens = map[string]struct{}{
		"QA": {}, "Q&A": {}, "Q/A": {}, "QUESTION": {}, "Q": {},
	}
	studyTokens = map[string]struct{}{
		"STUDY": {}, "NOTE": {}, "NOTES": {}, "SUMMARY": {}, "EXPLAIN": {},
	}
)

// NormalizeItems turns raw model output into a non-empty, schema-conformant
// QA/STUDY item list. It never fails: unparseable output resolves to a
// single STUDY item carrying a snippet of the raw text.
func NormalizeItems(raw string) []domain.Item {
	parsed, _ := extract.Parse(raw)
	return Items(parsed, raw)
}

// Items maps a loosely-shaped decoded value onto the Item schema. Elements
// with no usable content are dropped; if nothing survives, the raw text
// becomes a single STUDY item.
func Items(parsed any, raw string) []domain.Item {
	switch v := parsed.(type) {
	case []any:
		var out []domain.Item
		for _, elem := range v {
			switch e := elem.(type) {
			case map[string]any:
				content := strings.TrimSpace(firstString(e, itemContentKeys))
				if content == "" {
					continue
				}
				out = append(out, domain.Item{
					Type:    NormalizeItemType(firstString(e, itemTypeKeys)),
					Content: content,
				})
			case string:
				if content := strings.TrimSpace(e); content != "" {
					out = append(out, domain.Item{Type: domain.TypeStudy, Content: content})
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	case map[string]any:
		// A map of string values like {"Q1": "...", "Note": "..."} reads as
		// one item per entry, typed by its key. Keys are processed in sorted
		// order to keep the result deterministic.
		if items := itemsFromStringMap(v); len(items) > 0 {
			return items
		}
		if content := strings.TrimSpace(firstString(v, itemContentKeys)); content != "" {
			return []domain.Item{{
				Type:    NormalizeItemType(firstString(v, itemTypeKeys)),
				Content: content,
			}}
		}
	}
	snippet := truncate(raw, itemSnippetLimit)
	if snippet == "" {
		snippet = noItemContent
	}
	return []domain.Item{{Type: domain.TypeStudy, Content: snippet}}
}

func itemsFromStringMap(obj map[string]any) []domain.Item {
	if len(obj) == 0 {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k, v := range obj {
		if _, ok := v.(string); !ok {
			return nil
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []domain.Item
	for _, k := range keys {
		if content := strings.TrimSpace(obj[k].(string)); content != "" {
			out = append(out, domain.Item{Type: NormalizeItemType(k), Content: content})
		}
	}
	return out
}

// NormalizeItemType maps any type token to exactly QA or STUDY. Exact
// synonym sets win first; otherwise a token containing both the letters Q
// and A reads as QA; everything else, including a missing token, defaults
// to STUDY.
func NormalizeItemType(t string) string {
	up := strings.ToUpper(strings.TrimSpace(t))
	if _, ok := qaTokens[up]; ok {
		return domain.TypeQA
	}
	if _, ok := studyTokens[up]; ok {
		return domain.TypeStudy
	}
	if strings.Contains(up, "Q") && strings.Contains(up, "A") {
		return domain.TypeQA
	}
	return domain.TypeStudy
}
