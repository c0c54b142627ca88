package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	got := CleanText("line1\r\nline2\rline3")
	assert.Equal(t, "line1\nline2\nline3", got)
}

func TestCleanText_TrimsTrailingWhitespace(t *testing.T) {
	got := CleanText("hello   \nworld\t\t")
	assert.Equal(t, "hello\nworld", got)
}

func TestCleanText_CollapsesInteriorSpaces(t *testing.T) {
	got := CleanText("too   many\t spaces")
	assert.Equal(t, "too many spaces", got)
}

func TestCleanText_CapsBlankRuns(t *testing.T) {
	got := CleanText("a\n\n\n\n\nb")
	assert.Equal(t, "a\n\nb", got)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n \t \n"))
}

func TestGuessTitle_FirstLine(t *testing.T) {
	got := GuessTitle("Senior Python Developer\nWe are looking for...")
	assert.Equal(t, "Senior Python Developer", got)
}

func TestGuessTitle_TruncatesTo80(t *testing.T) {
	got := GuessTitle(strings.Repeat("x", 200))
	assert.Len(t, got, 80)
}

func TestGuessTitle_Empty(t *testing.T) {
	assert.Equal(t, "", GuessTitle(""))
	assert.Equal(t, "", GuessTitle("   \n"))
}

func TestGuessTitle_SkipsLeadingBlankLines(t *testing.T) {
	got := GuessTitle("\n\n  Backend Engineer\nrest")
	assert.Equal(t, "Backend Engineer", got)
}
