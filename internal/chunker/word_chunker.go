package chunker

import (
	"strings"

	"learnrag/internal/domain"
)

// DefaultWordsPerChunk bounds chunk size when the caller passes no limit.
const DefaultWordsPerChunk = 500

// WordChunker splits text into fixed-size groups of whitespace-delimited
// words. Chunks do not overlap, so no context is duplicated across chunk
// boundaries at the cost of possible context loss at the seams.
type WordChunker struct {
	wordsPerChunk int
}

func NewWordChunker(wordsPerChunk int) *WordChunker {
	if wordsPerChunk <= 0 {
		wordsPerChunk = DefaultWordsPerChunk
	}
	return &WordChunker{wordsPerChunk: wordsPerChunk}
}

// Chunk splits text using the chunker's configured size.
func (c *WordChunker) Chunk(text string) []domain.Chunk {
	return Split(text, c.wordsPerChunk)
}

// Split groups consecutive words into chunks of exactly size words; only the
// final chunk may be shorter. Splitting is deterministic and the space-joined
// chunks reproduce the input's word sequence. Empty input yields no chunks.
func Split(text string, size int) []domain.Chunk {
	if size <= 0 {
		size = DefaultWordsPerChunk
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	chunks := make([]domain.Chunk, 0, (len(words)+size-1)/size)
	for i := 0; i < len(words); i += size {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, domain.Chunk{
			Text:  strings.Join(words[i:end], " "),
			Index: len(chunks),
		})
	}
	return chunks
}
