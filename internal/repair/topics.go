package repair

import (
	"fmt"
	"strings"

	"learnrag/internal/domain"
	"learnrag/internal/extract"
)

const (
	untitledTopic = "Untitled Topic"
	// maxNameLen bounds names derived from free text.
	maxNameLen = 200
	// topicSnippetLimit caps the raw-text snippet carried by a fallback
	// RESOURCE topic.
	topicSnippetLimit = 1000

	noTopicContent = "Content not available"
)

// NormalizeTopics turns raw model output into a non-empty, schema-conformant
// topic list. It never fails: unparseable output resolves to a RESOURCE
// placeholder carrying a snippet of the raw text.
func NormalizeTopics(raw string) []domain.Topic {
	parsed, _ := extract.Parse(raw)
	return Topics(parsed, raw)
}

// Topics maps a loosely-shaped decoded value onto the Topic schema. A list
// is repaired element-wise, a single object is wrapped as a one-element
// list, and anything else becomes a RESOURCE placeholder.
func Topics(parsed any, raw string) []domain.Topic {
	switch v := parsed.(type) {
	case []any:
		out := make([]domain.Topic, 0, len(v))
		for _, elem := range v {
			switch e := elem.(type) {
			case map[string]any:
				out = append(out, repairTopic(e))
			case string:
				if name := truncate(e, maxNameLen); name != "" {
					out = append(out, domain.Topic{
						Type: domain.TypeTopic,
						Name: name,
						Subtopics: []domain.Subtopic{{
							Type:    domain.TypeSubtopic,
							Name:    name,
							Content: placeholderContent(name),
						}},
					})
					continue
				}
				out = append(out, resourceTopic(noTopicContent))
			default:
				out = append(out, resourceTopic(noTopicContent))
			}
		}
		if len(out) > 0 {
			return out
		}
	case map[string]any:
		return []domain.Topic{repairTopic(v)}
	}
	snippet := truncate(raw, topicSnippetLimit)
	if snippet == "" {
		snippet = noTopicContent
	}
	return []domain.Topic{resourceTopic(snippet)}
}

// repairTopic normalizes a single topic object. Type is forced to TOPIC,
// the name comes from the first usable synonym key, and a topic that ends
// up with no usable subtopics gets one synthesized placeholder rather than
// an empty list.
func repairTopic(obj map[string]any) domain.Topic {
	name := strings.TrimSpace(firstString(obj, topicNameKeys))
	if name == "" {
		name = untitledTopic
	}
	subs := repairSubtopics(firstValue(obj, topicChildrenKeys))
	if len(subs) == 0 {
		subs = []domain.Subtopic{{
			Type:    domain.TypeSubtopic,
			Name:    name,
			Content: placeholderContent(name),
		}}
	}
	return domain.Topic{Type: domain.TypeTopic, Name: name, Subtopics: subs}
}

// repairSubtopics accepts a string (each non-blank line becomes one
// subtopic), a list of objects or strings, or anything else (no subtopics).
// Content is never left blank: missing content gets a synthesized
// placeholder naming the subtopic.
func repairSubtopics(v any) []domain.Subtopic {
	switch raw := v.(type) {
	case string:
		var subs []domain.Subtopic
		for _, line := range strings.Split(raw, "\n") {
			name := truncate(line, maxNameLen)
			if name == "" {
				continue
			}
			subs = append(subs, domain.Subtopic{
				Type:    domain.TypeSubtopic,
				Name:    name,
				Content: placeholderContent(name),
			})
		}
		return subs
	case []any:
		var subs []domain.Subtopic
		for _, elem := range raw {
			switch e := elem.(type) {
			case map[string]any:
				name := strings.TrimSpace(firstString(e, subtopicNameKeys))
				if name == "" {
					continue
				}
				content := cleanLines(firstString(e, subContentKeys))
				if content == "" {
					content = placeholderContent(name)
				}
				subs = append(subs, domain.Subtopic{Type: domain.TypeSubtopic, Name: name, Content: content})
			case string:
				name := strings.TrimSpace(e)
				if name == "" {
					continue
				}
				subs = append(subs, domain.Subtopic{
					Type:    domain.TypeSubtopic,
					Name:    name,
					Content: placeholderContent(name),
				})
			}
		}
		return subs
	default:
		return nil
	}
}

func placeholderContent(name string) string {
	return fmt.Sprintf("Content to be learned for '%s'", name)
}

func resourceTopic(content string) domain.Topic {
	return domain.Topic{
		Type: domain.TypeTopic,
		Name: domain.ResourceName,
		Subtopics: []domain.Subtopic{{
			Type:    domain.TypeSubtopic,
			Name:    domain.ResourceName,
			Content: content,
		}},
	}
}
