package fetch

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minCandidateLength is the extracted-text length above which a content
// region is accepted without trying later selectors.
const minCandidateLength = 200

// contentSelectors are tried in priority order. The list favors containers
// job boards commonly use for the posting body before falling back to
// generic semantic tags.
var contentSelectors = []string{
	"[class*=description]",
	"[class*=job-description]",
	"[class*=jobDescription]",
	"[id*=job-]",
	"article",
	"main",
	"section",
	"[class*=posting]",
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ExtractJobText pulls the job description text out of raw HTML.
//
// It walks the selector cascade and keeps the first candidate whose text
// exceeds minCandidateLength; shorter candidates are remembered but later
// selectors may replace them. When no selector yields text, the full body is
// used. All whitespace runs collapse to single spaces. Parse failures yield
// an empty string rather than an error: an unreadable page is treated the
// same as an empty one.
func ExtractJobText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var candidate string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			continue
		}
		candidate = text
		if len(candidate) > minCandidateLength {
			break
		}
	}

	if candidate == "" {
		candidate = strings.TrimSpace(doc.Find("body").Text())
	}

	return CollapseWhitespace(candidate)
}

// CollapseWhitespace folds every whitespace run into a single space and trims
// the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
