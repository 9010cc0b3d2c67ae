// Package repair coerces loosely-shaped model output onto the fixed output
// schemas. Every repair function is total: malformed input degrades to a
// well-typed placeholder that salvages as much of the original signal as
// possible, and no error is ever propagated for odd model output.
package repair

import "strings"

// Synonym key tables, evaluated in fixed priority order. A key wins only if
// it holds a non-blank string (non-string values fall through to the next
// candidate), which keeps the matching auditable and testable.
var (
	topicNameKeys     = []string{"name", "title", "topic"}
	topicChildrenKeys = []string{"subtopics", "SUBTOPICS", "children"}
	subtopicNameKeys  = []string{"name", "title", "subtopic"}
	subContentKeys    = []string{"content", "details", "description"}
	itemTypeKeys      = []string{"type", "kind", "role"}
	itemContentKeys   = []string{"content", "text", "body"}
)

// firstString returns the first non-blank string value among keys, in table
// order.
func firstString(obj map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// firstValue returns the first present value among keys, regardless of type.
func firstValue(obj map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// truncate trims s and caps it at limit runes, replacing the last three with
// an ellipsis marker on truncation.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// cleanLines trims each line, drops blank ones, and rejoins.
func cleanLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, "\n")
}
