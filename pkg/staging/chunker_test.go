package staging

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitContent_FitsInOneChunk(t *testing.T) {
	chunks := SplitContent("a short passage", 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short passage", chunks[0])
}

func TestSplitContent_Empty(t *testing.T) {
	assert.Nil(t, SplitContent("", 100))
}

func TestSplitContent_PageMarkersKeepPagesIntact(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&b, "[Page %d]\n%s\n", i, strings.Repeat("lore ", 20))
	}

	chunks := SplitContent(b.String(), 250)
	require.Greater(t, len(chunks), 1)

	// No chunk starts mid-page and every page header survives exactly once.
	total := strings.Join(chunks, "\n")
	for i := 1; i <= 6; i++ {
		marker := fmt.Sprintf("[Page %d]", i)
		assert.Equal(t, 1, strings.Count(total, marker), marker)
	}
	for _, c := range chunks {
		assert.True(t, strings.HasPrefix(c, "[Page "), "chunk should start at a page boundary: %q", c[:20])
	}
}

func TestSplitContent_OversizedPageFallsBackToSentences(t *testing.T) {
	page := "[Page 1]\n" + strings.Repeat("The dragon slept. ", 40)
	chunks := SplitContent(page, 120)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 120)
	}
}

func TestSplitContent_PrefersSentenceBoundaries(t *testing.T) {
	content := strings.Repeat("The party rested at the inn. ", 30)
	chunks := SplitContent(content, 200)
	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		if i < len(chunks)-1 {
			assert.True(t, strings.HasSuffix(c, "."), "chunk %d should end on a sentence: %q", i, c)
		}
	}
}

func TestSplitContent_NoSentenceBoundaryHardCuts(t *testing.T) {
	content := strings.Repeat("x", 500)
	chunks := SplitContent(content, 200)
	require.Len(t, chunks, 3)
	assert.Equal(t, 200, len(chunks[0]))
	assert.Equal(t, 200, len(chunks[1]))
	assert.Equal(t, 100, len(chunks[2]))
}
