// Package ingestion turns job sources and CV documents into plain text for
// the analysis engine.
package ingestion

import (
	"regexp"
	"strings"
)

// maxTitleLength caps the naive job-title guess.
const maxTitleLength = 80

var (
	interiorSpaces = regexp.MustCompile(`[ \t]+`)
	blankRuns      = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes pasted or extracted text while preserving its line
// structure: CRLF folds to LF, trailing whitespace is trimmed, interior
// space runs collapse to one space, and blank-line runs cap at one blank.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			cleaned = append(cleaned, "")
			continue
		}
		cleaned = append(cleaned, interiorSpaces.ReplaceAllString(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// GuessTitle takes the first line of job text as a naive job-title guess,
// truncated to maxTitleLength characters. Empty text yields an empty guess.
func GuessTitle(jobText string) string {
	trimmed := strings.TrimSpace(jobText)
	if trimmed == "" {
		return ""
	}
	firstLine := trimmed
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		firstLine = trimmed[:idx]
	}
	runes := []rune(firstLine)
	if len(runes) > maxTitleLength {
		runes = runes[:maxTitleLength]
	}
	return strings.TrimSpace(string(runes))
}
