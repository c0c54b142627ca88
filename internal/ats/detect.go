package ats

import (
	"net/url"
	"regexp"
	"strings"
)

// poweredByPattern finds "powered by <vendor>" credits in page text.
var poweredByPattern = regexp.MustCompile(`powered by\s+([a-z0-9\-]+)`)

// Detect classifies a job source against the signature table.
//
// Both inputs are optional: urlStr may be empty when the posting was pasted
// rather than fetched, and pageText may be empty when no page was retrieved.
// Domain fragments are matched as substrings of the full URL and of its host;
// content fragments as substrings of the page text. Each entry can tally once
// per check, so a platform matching both its domain and its content fragments
// outranks one matching only a single check. The most-tallied platform wins,
// ties resolving to the earliest table entry. With no signature match, a
// "powered by <vendor>" credit in the page text names the platform; failing
// that, Detect returns the Unknown sentinel. It never fails.
func Detect(urlStr, pageText string) string {
	urlLower := strings.ToLower(urlStr)
	textLower := strings.ToLower(pageText)

	host := ""
	if urlLower != "" {
		if parsed, err := url.Parse(urlLower); err == nil {
			host = parsed.Host
		}
	}

	tallies := make(map[string]int)
	for _, sig := range table {
		for _, fragment := range sig.Domains {
			if strings.Contains(urlLower, fragment) || (host != "" && strings.Contains(host, fragment)) {
				tallies[sig.Name]++
				break
			}
		}
		for _, fragment := range sig.ContentSig {
			if textLower != "" && strings.Contains(textLower, fragment) {
				tallies[sig.Name]++
				break
			}
		}
	}

	if len(tallies) > 0 {
		best := ""
		bestCount := 0
		for _, sig := range table {
			if count := tallies[sig.Name]; count > bestCount {
				best = sig.Name
				bestCount = count
			}
		}
		return best
	}

	if m := poweredByPattern.FindStringSubmatch(textLower); m != nil {
		return capitalize(m[1])
	}

	return Unknown
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
