// Package scoring computes the weighted 0-100 compatibility score between a
// CV and a job posting's keyword set.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-inspector/internal/contact"
)

// Component weights. They sum to 100, so the natural maximum total is 100.
const (
	WeightContact    = 15.0
	WeightTitle      = 15.0
	WeightKeywords   = 40.0
	WeightLength     = 10.0
	WeightFormatting = 10.0
)

// Thresholds for the length and formatting components.
const (
	fullLengthChars    = 1000
	partialLengthChars = 500
	maxNonASCIIRatio   = 0.02
	maxTabs            = 5
	maxLongLines       = 5
	longLineChars      = 200
)

// Breakdown reports each weighted component rounded to one decimal place,
// plus the integer total.
type Breakdown struct {
	Contact    float64 `json:"contact_score"`
	Title      float64 `json:"title_score"`
	Keywords   float64 `json:"keyword_score"`
	Length     float64 `json:"length_score"`
	Formatting float64 `json:"formatting_score"`
	Total      int     `json:"total"`
}

// Score rates cvText against the job keyword set and optional job title.
// It returns an integer total in [0, 100] and the per-component breakdown.
// Empty input is valid and simply scores low; Score never fails.
func Score(cvText string, jobKeywords []string, jobTitle string) (int, Breakdown) {
	contactScore := scoreContact(cvText)
	titleScore := scoreTitle(cvText, jobTitle)
	keywordScore := scoreKeywords(cvText, jobKeywords)
	lengthScore := scoreLength(cvText)
	formattingScore := scoreFormatting(cvText)

	sum := contactScore + titleScore + keywordScore + lengthScore + formattingScore
	total := int(math.Round(sum))
	if total > 100 {
		total = 100
	}

	return total, Breakdown{
		Contact:    round1(contactScore),
		Title:      round1(titleScore),
		Keywords:   round1(keywordScore),
		Length:     round1(lengthScore),
		Formatting: round1(formattingScore),
		Total:      total,
	}
}

// scoreContact awards full weight when both an email and a phone number are
// present, 60% for exactly one, and nothing otherwise.
func scoreContact(cvText string) float64 {
	info := contact.Find(cvText)
	switch {
	case info.HasEmail() && info.HasPhone():
		return WeightContact
	case info.HasEmail() || info.HasPhone():
		return WeightContact * 0.6
	default:
		return 0
	}
}

// scoreTitle awards full weight when the job title appears verbatim
// (case-insensitively) in the CV. No title supplied means no credit.
func scoreTitle(cvText, jobTitle string) float64 {
	if jobTitle == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(cvText), strings.ToLower(jobTitle)) {
		return WeightTitle
	}
	return 0
}

// scoreKeywords awards weight proportional to the fraction of distinct job
// keywords found in the CV. Keywords match as substrings, so "java" matches
// inside "javascript"; this imprecision is deliberate and keeps scoring
// stable across releases. An empty keyword set is absence of signal, not
// failure, and earns a neutral 50% credit.
func scoreKeywords(cvText string, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return WeightKeywords * 0.5
	}

	cvLower := strings.ToLower(cvText)
	distinct := make(map[string]bool, len(jobKeywords))
	for _, kw := range jobKeywords {
		distinct[strings.ToLower(kw)] = true
	}

	matched := 0
	for kw := range distinct {
		if strings.Contains(cvLower, kw) {
			matched++
		}
	}

	return WeightKeywords * float64(matched) / float64(len(jobKeywords))
}

func scoreLength(cvText string) float64 {
	chars := utf8.RuneCountInString(cvText)
	switch {
	case chars > fullLengthChars:
		return WeightLength
	case chars > partialLengthChars:
		return WeightLength * 0.6
	default:
		return 0
	}
}

// scoreFormatting starts at full weight and halves it once when any parsing
// risk trigger fires: heavy non-ASCII content, many tabs, or many very long
// lines. Triggers do not stack.
func scoreFormatting(cvText string) float64 {
	score := WeightFormatting
	if cvText == "" {
		return score
	}

	runes := []rune(cvText)
	nonASCII := 0
	for _, r := range runes {
		if r > 127 {
			nonASCII++
		}
	}
	nonASCIIRatio := float64(nonASCII) / float64(len(runes))

	tabs := strings.Count(cvText, "\t")

	longLines := 0
	for _, line := range strings.Split(cvText, "\n") {
		if utf8.RuneCountInString(line) > longLineChars {
			longLines++
		}
	}

	if nonASCIIRatio > maxNonASCIIRatio || tabs > maxTabs || longLines > maxLongLines {
		score *= 0.5
	}
	return score
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
