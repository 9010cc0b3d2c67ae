package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeLimitsSentenceCount(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Go compiles fast. Go programs deploy as one binary. Goroutines make concurrency simple. " +
		"The toolchain formats code for you. Interfaces are satisfied implicitly. Maps are built in."
	out, err := s.Summarize(text, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.LessOrEqual(t, strings.Count(out, "."), 2)
}

func TestSummarizePreservesOriginalOrder(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Alpha sentence comes first here. Beta sentence follows second here. Gamma sentence ends third here."
	out, err := s.Summarize(text, 3)
	require.NoError(t, err)
	ia := strings.Index(out, "Alpha")
	ib := strings.Index(out, "Beta")
	ic := strings.Index(out, "Gamma")
	require.True(t, ia >= 0 && ib >= 0 && ic >= 0)
	assert.Less(t, ia, ib)
	assert.Less(t, ib, ic)
}

func TestSummarizeNoSentenceBoundaries(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize("  no terminal punctuation at all  ", 3)
	require.NoError(t, err)
	assert.Equal(t, "no terminal punctuation at all", out)
}

func TestSummarizeEmptyText(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize("", 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSummarizeDefaultSentenceCap(t *testing.T) {
	s := NewFrequencySummarizer()
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("Sentence number ")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString(" carries payload. ")
	}
	out, err := s.Summarize(b.String(), 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, strings.Count(out, "."), 5)
}
