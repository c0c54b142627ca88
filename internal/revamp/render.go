package revamp

import "strings"

// RenderMarkdown serializes a Document to Markdown text. The caller owns
// writing the rendered bytes to disk or the HTTP response.
func RenderMarkdown(doc *Document) string {
	var sb strings.Builder

	sb.WriteString("# " + doc.Heading + "\n\n")
	sb.WriteString(doc.ContactLine + "\n\n")

	sb.WriteString("## Professional Summary\n\n")
	sb.WriteString(doc.Summary + "\n\n")

	sb.WriteString("## Key Skills\n\n")
	if len(doc.Skills) > 0 {
		for _, skill := range doc.Skills {
			sb.WriteString("- " + skill + "\n")
		}
	} else {
		sb.WriteString(doc.SkillsNote + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Full CV (original content)\n\n")
	for _, line := range doc.Original {
		sb.WriteString(line + "\n")
	}

	return sb.String()
}
