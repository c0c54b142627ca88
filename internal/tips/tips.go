// Package tips turns a score and its context into prioritized, human-readable
// improvement recommendations.
package tips

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-inspector/internal/ats"
	"github.com/jonathan/ats-inspector/internal/contact"
)

// GoodScoreThreshold is the score at or above which the CV is considered
// ATS-friendly and only a congratulatory summary is produced.
const GoodScoreThreshold = 85

const (
	maxMissingKeywords = 12
	maxGenericTips     = 3
)

// genericTips is the fixed pool of best-practice recommendations. Only the
// first maxGenericTips entries are appended to a report.
var genericTips = []string{
	"Use a single-column layout: most ATS parse single-column text better than multi-column or tables.",
	`Prefer standard section headings: "Work Experience", "Education", "Skills", "Contact".`,
	"Save as DOCX or a simple PDF (DOCX is usually safest). Avoid images, text in headers/footers, and fancy graphics.",
	"Use standard date formats (e.g., Apr 2020 – Feb 2023).",
	"Include a concise skills section listing keywords from the job advert.",
	"Avoid special characters and excessive symbols (they sometimes break parsers).",
}

// platformTips maps ATS labels to platform-specific advice. Labels without a
// dedicated entry fall back to the Unknown sentinel's tips.
var platformTips = map[string][]string{
	"Greenhouse": {
		"Greenhouse parses plain DOCX well; avoid placing contact information inside headers/footers.",
		"Use clear bullets for accomplishments and avoid images or complex tables.",
	},
	"Lever": {
		"Lever-based career pages prefer standard section headings and clear dates per job role.",
		"Avoid embedding text inside text-boxes or columns.",
	},
	"Workday": {
		"Workday can struggle with multi-column layouts; use single column and plain fonts.",
		"Place your contact details at the top in plain text (not header/footer).",
	},
	"iCIMS": {
		"iCIMS works well with DOCX — keep skills in a dedicated section and use plain bullets.",
	},
	"Taleo": {
		"Taleo-based portals sometimes struggle with special characters — remove emoji and fancy bullets.",
	},
	ats.Unknown: {
		"This appears to be a custom portal. Follow generic ATS best-practices: simple DOCX, clear headings, no images.",
	},
}

// Build produces the ordered recommendation list for a scored CV.
//
// A score at or above GoodScoreThreshold short-circuits to a single
// congratulatory tip. Otherwise the list is assembled in a fixed order:
// score summary, platform-specific advice, structural gaps, contact gaps,
// missing keywords, then generic best practices.
func Build(score int, atsName, cvText string, jobKeywords []string) []string {
	if score >= GoodScoreThreshold {
		return []string{fmt.Sprintf(
			"Great — your CV scored %d. Minor tweaks can still help, but it is ATS-friendly.", score)}
	}

	tips := []string{fmt.Sprintf("Your CV scored %d/100. Here are prioritized improvement tips:", score)}

	platformSpecific, ok := platformTips[atsName]
	if !ok {
		platformSpecific = platformTips[ats.Unknown]
	}
	tips = append(tips, platformSpecific...)

	if !strings.Contains(cvText, "Work Experience") && !strings.Contains(cvText, "Experience") {
		tips = append(tips, `Add a clear "Work Experience" section with job titles and dates.`)
	}

	info := contact.Find(cvText)
	if !info.HasEmail() {
		tips = append(tips, "Add a visible email address at the top of the CV.")
	}
	if !info.HasPhone() {
		tips = append(tips, "Add a phone number at the top of the CV.")
	}

	if missing := missingKeywords(cvText, jobKeywords); len(missing) > 0 {
		tips = append(tips, fmt.Sprintf(
			"Include more of these job-specific keywords where truthful: %s",
			strings.Join(missing, ", ")))
	}

	tips = append(tips, genericTips[:maxGenericTips]...)
	return tips
}

// missingKeywords returns up to maxMissingKeywords job keywords absent from
// the CV, preserving keyword order.
func missingKeywords(cvText string, jobKeywords []string) []string {
	cvLower := strings.ToLower(cvText)
	var missing []string
	for _, kw := range jobKeywords {
		if !strings.Contains(cvLower, strings.ToLower(kw)) {
			missing = append(missing, kw)
			if len(missing) == maxMissingKeywords {
				break
			}
		}
	}
	return missing
}
