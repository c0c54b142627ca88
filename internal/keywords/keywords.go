// Package keywords provides frequency-based keyword extraction from job posting text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultTopN is the default number of keywords returned by Extract.
const DefaultTopN = 25

// minTokenLength is the minimum token length to be considered a keyword.
const minTokenLength = 3

// stopwords is a small set of common English function words excluded from extraction.
var stopwords = buildStopwords()

func buildStopwords() map[string]bool {
	words := strings.Fields(`
		the a an and or to of for with on in at by from as is are that this will be
	`)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// nonTokenChars matches everything except letters, digits, hyphen and whitespace.
var nonTokenChars = regexp.MustCompile(`[^A-Za-z0-9\-\s]`)

// Extract tokenizes text and returns up to topN distinct keywords ordered by
// descending frequency. Ties are broken by first occurrence in the text.
// Tokens shorter than 3 characters and stopwords are dropped.
// The result is deterministic for identical input; empty or all-stopword
// text yields an empty slice.
func Extract(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	cleaned := nonTokenChars.ReplaceAllString(text, " ")

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, raw := range strings.Fields(cleaned) {
		if len(raw) < minTokenLength {
			continue
		}
		token := strings.ToLower(raw)
		if stopwords[token] {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}

	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return firstSeen[tokens[i]] < firstSeen[tokens[j]]
	})

	if len(tokens) > topN {
		tokens = tokens[:topN]
	}
	return tokens
}
