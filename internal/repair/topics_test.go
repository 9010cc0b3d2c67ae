package repair

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnrag/internal/domain"
)

// requireTopicShape asserts the schema invariants every repaired topic list
// must satisfy regardless of input.
func requireTopicShape(t *testing.T, topics []domain.Topic) {
	t.Helper()
	require.NotEmpty(t, topics)
	for _, topic := range topics {
		assert.Equal(t, domain.TypeTopic, topic.Type)
		assert.NotEmpty(t, topic.Name)
		require.NotEmpty(t, topic.Subtopics)
		for _, sub := range topic.Subtopics {
			assert.Equal(t, domain.TypeSubtopic, sub.Type)
			assert.NotEmpty(t, sub.Name)
			assert.NotEmpty(t, sub.Content)
		}
	}
}

func TestNormalizeTopicsWellFormed(t *testing.T) {
	raw := `[{"type": "TOPIC", "name": "Goroutines", "subtopics": [
		{"type": "SUBTOPIC", "name": "Channels", "content": "Typed conduits."}]}]`
	topics := NormalizeTopics(raw)
	requireTopicShape(t, topics)
	require.Len(t, topics, 1)
	assert.Equal(t, "Goroutines", topics[0].Name)
	require.Len(t, topics[0].Subtopics, 1)
	assert.Equal(t, "Channels", topics[0].Subtopics[0].Name)
	assert.Equal(t, "Typed conduits.", topics[0].Subtopics[0].Content)
}

func TestNormalizeTopicsWrappedInProse(t *testing.T) {
	raw := "Here you go:\n[{\"name\": \"Loops\", \"subtopics\": [{\"name\": \"For\", \"content\": \"The only loop.\"}]}]\nEnjoy!"
	topics := NormalizeTopics(raw)
	requireTopicShape(t, topics)
	assert.Equal(t, "Loops", topics[0].Name)
}

func TestNormalizeTopicsSynonymKeys(t *testing.T) {
	raw := `[{"title": "Maps", "children": [{"subtopic": "Iteration", "details": "Order is randomized."}]}]`
	topics := NormalizeTopics(raw)
	requireTopicShape(t, topics)
	assert.Equal(t, "Maps", topics[0].Name)
	require.Len(t, topics[0].Subtopics, 1)
	assert.Equal(t, "Iteration", topics[0].Subtopics[0].Name)
	assert.Equal(t, "Order is randomized.", topics[0].Subtopics[0].Content)
}

func TestNormalizeTopicsSynonymPriority(t *testing.T) {
	raw := `[{"title": "Second", "name": "First", "topic": "Third"}]`
	topics := NormalizeTopics(raw)
	assert.Equal(t, "First", topics[0].Name)
}

func TestNormalizeTopicsMissingName(t *testing.T) {
	topics := NormalizeTopics(`[{"subtopics": [{"name": "Only", "content": "c"}]}]`)
	requireTopicShape(t, topics)
	assert.Equal(t, "Untitled Topic", topics[0].Name)
}

func TestNormalizeTopicsEmptySubtopicsSynthesized(t *testing.T) {
	topics := NormalizeTopics(`[{"name": "Loops", "subtopics": []}]`)
	requireTopicShape(t, topics)
	require.Len(t, topics[0].Subtopics, 1)
	assert.Equal(t, "Loops", topics[0].Subtopics[0].Name)
	assert.Equal(t, "Content to be learned for 'Loops'", topics[0].Subtopics[0].Content)
}

func TestNormalizeTopicsSubtopicsAsString(t *testing.T) {
	topics := NormalizeTopics(`[{"name": "Go", "subtopics": "Syntax\n\nTooling\n"}]`)
	requireTopicShape(t, topics)
	require.Len(t, topics[0].Subtopics, 2)
	assert.Equal(t, "Syntax", topics[0].Subtopics[0].Name)
	assert.Equal(t, "Content to be learned for 'Syntax'", topics[0].Subtopics[0].Content)
	assert.Equal(t, "Tooling", topics[0].Subtopics[1].Name)
}

func TestNormalizeTopicsSubtopicStringsInList(t *testing.T) {
	topics := NormalizeTopics(`[{"name": "Go", "subtopics": ["Slices", {"content": "nameless, dropped"}, {"name": "Arrays"}]}]`)
	requireTopicShape(t, topics)
	require.Len(t, topics[0].Subtopics, 2)
	assert.Equal(t, "Slices", topics[0].Subtopics[0].Name)
	assert.Equal(t, "Arrays", topics[0].Subtopics[1].Name)
	assert.Equal(t, "Content to be learned for 'Arrays'", topics[0].Subtopics[1].Content)
}

func TestNormalizeTopicsSingleObjectWrapped(t *testing.T) {
	topics := NormalizeTopics(`{"name": "Solo", "subtopics": [{"name": "One", "content": "c"}]}`)
	requireTopicShape(t, topics)
	require.Len(t, topics, 1)
	assert.Equal(t, "Solo", topics[0].Name)
}

func TestNormalizeTopicsBareStringsInList(t *testing.T) {
	topics := NormalizeTopics(`["Variables", "Functions"]`)
	requireTopicShape(t, topics)
	require.Len(t, topics, 2)
	assert.Equal(t, "Variables", topics[0].Name)
	require.Len(t, topics[0].Subtopics, 1)
	assert.Equal(t, "Content to be learned for 'Variables'", topics[0].Subtopics[0].Content)
}

func TestNormalizeTopicsEmptyListFallsBack(t *testing.T) {
	topics := NormalizeTopics(`[]`)
	requireTopicShape(t, topics)
	require.Len(t, topics, 1)
	assert.Equal(t, domain.ResourceName, topics[0].Name)
	assert.Equal(t, "[]", topics[0].Subtopics[0].Content)
}

func TestNormalizeTopicsUnparseableRaw(t *testing.T) {
	topics := NormalizeTopics("I could not produce a roadmap, sorry.")
	requireTopicShape(t, topics)
	require.Len(t, topics, 1)
	assert.Equal(t, domain.ResourceName, topics[0].Name)
	assert.Equal(t, domain.ResourceName, topics[0].Subtopics[0].Name)
	assert.Equal(t, "I could not produce a roadmap, sorry.", topics[0].Subtopics[0].Content)
}

func TestNormalizeTopicsEmptyRaw(t *testing.T) {
	topics := NormalizeTopics("")
	requireTopicShape(t, topics)
	assert.Equal(t, "Content not available", topics[0].Subtopics[0].Content)
}

func TestNormalizeTopicsRawSnippetTruncated(t *testing.T) {
	raw := strings.Repeat("x", 5000)
	topics := NormalizeTopics(raw)
	content := topics[0].Subtopics[0].Content
	assert.Len(t, []rune(content), 1000)
	assert.True(t, strings.HasSuffix(content, "..."))
}

func TestNormalizeTopicsNonObjectElements(t *testing.T) {
	topics := NormalizeTopics(`[42, null]`)
	requireTopicShape(t, topics)
	require.Len(t, topics, 2)
	for _, topic := range topics {
		assert.Equal(t, domain.ResourceName, topic.Name)
		assert.Equal(t, "Content not available", topic.Subtopics[0].Content)
	}
}

func mustTopicsJSON(t *testing.T, topics []domain.Topic) string {
	t.Helper()
	data, err := json.Marshal(topics)
	require.NoError(t, err)
	return string(data)
}

func TestNormalizeTopicsIdempotentOnConformantOutput(t *testing.T) {
	first := NormalizeTopics(`[{"title": "Maps", "children": "Iteration\nDeletion"}]`)
	encoded := mustTopicsJSON(t, first)
	second := NormalizeTopics(encoded)
	assert.Equal(t, first, second)
}
