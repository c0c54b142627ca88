package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJobText_DescriptionClassWins(t *testing.T) {
	long := strings.Repeat("We are hiring a Go engineer to build services. ", 10)
	html := `<html><body>
		<nav>Menu Home About</nav>
		<div class="job-description-block">` + long + `</div>
		<footer>fine print</footer>
	</body></html>`

	got := ExtractJobText(html)
	assert.Contains(t, got, "We are hiring a Go engineer")
	assert.NotContains(t, got, "fine print")
}

func TestExtractJobText_ShortCandidateReplacedByLater(t *testing.T) {
	long := strings.Repeat("Responsibilities include designing APIs. ", 10)
	html := `<html><body>
		<div class="description">Too short.</div>
		<article>` + long + `</article>
	</body></html>`

	got := ExtractJobText(html)
	assert.Contains(t, got, "Responsibilities include designing APIs")
}

func TestExtractJobText_BodyFallback(t *testing.T) {
	html := `<html><body><p>Just a plain paragraph.</p></body></html>`
	got := ExtractJobText(html)
	assert.Equal(t, "Just a plain paragraph.", got)
}

func TestExtractJobText_CollapsesWhitespace(t *testing.T) {
	html := "<html><body><main>spaced\n\n\t  out \t text</main></body></html>"
	got := ExtractJobText(html)
	assert.Equal(t, "spaced out text", got)
}

func TestExtractJobText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", ExtractJobText(""))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a\n b\t\tc  "))
	assert.Equal(t, "", CollapseWhitespace("   \n\t "))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("tiny"))
	assert.True(t, ShouldUseBrowser("   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength+1)))
}
