// Package revamp assembles a restructured, keyword-seeded copy of a CV for
// low-scoring analyses. The composer builds a new document skeleton; it never
// edits the original text and contains no scoring logic.
package revamp

import "strings"

const (
	maxFocusKeywords = 12
	maxSkillBullets  = 30
)

const (
	// Heading is the document title for every revamped CV.
	Heading = "Keyword-optimized CV"
	// contactPlaceholder stands in when neither email nor phone was detected.
	contactPlaceholder = "Contact information"
	// defaultRole stands in when no job title was supplied.
	defaultRole = "Relevant role"
)

// Document is the restructured CV skeleton, ordered for rendering.
type Document struct {
	Heading     string   `json:"heading"`
	ContactLine string   `json:"contact_line"`
	Summary     string   `json:"summary"`
	Skills      []string `json:"skills"`
	SkillsNote  string   `json:"skills_note,omitempty"`
	Original    []string `json:"original"` // non-blank lines of the source CV, verbatim
}

// Compose builds the revamped document from the original CV text, detected
// contact details, the target job title and the job keyword set. Assembly is
// deterministic for identical input.
func Compose(cvText, email, phone, jobTitle string, jobKeywords []string) *Document {
	doc := &Document{
		Heading:     Heading,
		ContactLine: contactLine(email, phone),
		Summary:     summary(jobTitle, jobKeywords),
	}

	if len(jobKeywords) > 0 {
		skills := jobKeywords
		if len(skills) > maxSkillBullets {
			skills = skills[:maxSkillBullets]
		}
		doc.Skills = append(doc.Skills, skills...)
	} else {
		doc.SkillsNote = "See original CV for full skill details."
	}

	for _, line := range strings.Split(cvText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			doc.Original = append(doc.Original, trimmed)
		}
	}

	return doc
}

func contactLine(email, phone string) string {
	var parts []string
	if email != "" {
		parts = append(parts, email)
	}
	if phone != "" {
		parts = append(parts, phone)
	}
	if len(parts) == 0 {
		return contactPlaceholder
	}
	return strings.Join(parts, " | ")
}

func summary(jobTitle string, jobKeywords []string) string {
	role := jobTitle
	if role == "" {
		role = defaultRole
	}
	s := "Targeting role: " + role
	if len(jobKeywords) > 0 {
		focus := jobKeywords
		if len(focus) > maxFocusKeywords {
			focus = focus[:maxFocusKeywords]
		}
		s += "\nKey focus areas: " + strings.Join(focus, ", ")
	}
	return s
}
