package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("LEARNRAG_TEST_KEY", "")
	_, err := NewClient(Config{APIKeyEnv: "LEARNRAG_TEST_KEY"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEARNRAG_TEST_KEY")
}

func TestNewClientDefaults(t *testing.T) {
	t.Setenv("LEARNRAG_TEST_KEY", "sk-test")
	c, err := NewClient(Config{APIKeyEnv: "LEARNRAG_TEST_KEY"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", c.ModelName())
	assert.Equal(t, 2400, c.maxTokens)
}

func TestAnswerPromptEmptyContext(t *testing.T) {
	p := AnswerPrompt("why?", "")
	assert.Contains(t, p, "Question: why?")
	assert.Contains(t, p, "Context:\nNone")
}

func TestPromptBuildersEmbedArguments(t *testing.T) {
	assert.Contains(t, RoadmapPrompt("Go", "ctx"), "Subject: Go")
	assert.Contains(t, ItemsPrompt("Slices", "ctx"), "Subtopic: Slices")
	assert.True(t, strings.Contains(AnswerPrompt("q", "c"), "Context:\nc"))
}
