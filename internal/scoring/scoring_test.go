package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fullContactCV = "Jane Doe\njane@example.com\n+1 555-123-4567\n"

func TestScore_RangeInvariant(t *testing.T) {
	inputs := []string{
		"",
		"short",
		fullContactCV + strings.Repeat("Go developer with Python and Docker experience. ", 50),
		strings.Repeat("\t", 20),
		strings.Repeat("é", 500),
	}
	for _, cv := range inputs {
		total, breakdown := Score(cv, []string{"python", "docker"}, "Developer")
		assert.GreaterOrEqual(t, total, 0)
		assert.LessOrEqual(t, total, 100)
		assert.Equal(t, total, breakdown.Total)
	}
}

func TestScore_ContactBothChannels(t *testing.T) {
	_, breakdown := Score(fullContactCV, nil, "")
	assert.Equal(t, 15.0, breakdown.Contact)
}

func TestScore_ContactEmailOnly(t *testing.T) {
	_, breakdown := Score("reach jane@example.com by mail", nil, "")
	assert.Equal(t, 9.0, breakdown.Contact)
}

func TestScore_ContactAbsent(t *testing.T) {
	_, breakdown := Score("no contact details here", nil, "")
	assert.Equal(t, 0.0, breakdown.Contact)
}

func TestScore_TitleMatchCaseInsensitive(t *testing.T) {
	_, breakdown := Score("Experienced SENIOR PYTHON DEVELOPER", nil, "Senior Python Developer")
	assert.Equal(t, 15.0, breakdown.Title)
}

func TestScore_TitleAbsentWhenNotSupplied(t *testing.T) {
	_, breakdown := Score("Experienced Senior Python Developer", nil, "")
	assert.Equal(t, 0.0, breakdown.Title)
}

func TestScore_KeywordsProportional(t *testing.T) {
	_, breakdown := Score("I know Python and Docker", []string{"python", "docker", "flask", "sql"}, "")
	// 2 of 4 keywords matched.
	assert.Equal(t, 20.0, breakdown.Keywords)
}

func TestScore_KeywordsCaseInsensitive(t *testing.T) {
	_, breakdown := Score("Python expert", []string{"python"}, "")
	assert.Equal(t, 40.0, breakdown.Keywords)
}

func TestScore_KeywordsSubstringMatch(t *testing.T) {
	// "java" matches inside "javascript" on purpose.
	_, breakdown := Score("javascript engineer", []string{"java"}, "")
	assert.Equal(t, 40.0, breakdown.Keywords)
}

func TestScore_EmptyKeywordSetNeutralCredit(t *testing.T) {
	_, breakdown := Score("any cv text", nil, "")
	assert.Equal(t, 20.0, breakdown.Keywords)
}

func TestScore_LengthTiers(t *testing.T) {
	_, short := Score(strings.Repeat("a", 400), nil, "")
	assert.Equal(t, 0.0, short.Length)

	_, medium := Score(strings.Repeat("a", 700), nil, "")
	assert.Equal(t, 6.0, medium.Length)

	_, long := Score(strings.Repeat("a", 1500), nil, "")
	assert.Equal(t, 10.0, long.Length)
}

func TestScore_FormattingCleanText(t *testing.T) {
	_, breakdown := Score("A clean plain-text CV", nil, "")
	assert.Equal(t, 10.0, breakdown.Formatting)
}

func TestScore_FormattingLongLinesPenalty(t *testing.T) {
	lines := make([]string, 6)
	for i := range lines {
		lines[i] = strings.Repeat("x", 250)
	}
	_, breakdown := Score(strings.Join(lines, "\n"), nil, "")
	assert.Equal(t, 5.0, breakdown.Formatting)
}

func TestScore_FormattingTabsPenalty(t *testing.T) {
	_, breakdown := Score("a\tb\tc\td\te\tf\tg", nil, "")
	assert.Equal(t, 5.0, breakdown.Formatting)
}

func TestScore_FormattingNonASCIIPenalty(t *testing.T) {
	cv := strings.Repeat("é", 10) + strings.Repeat("a", 90)
	_, breakdown := Score(cv, nil, "")
	assert.Equal(t, 5.0, breakdown.Formatting)
}

func TestScore_FormattingPenaltyNotCumulative(t *testing.T) {
	cv := strings.Repeat("\t", 10) + "\n" + strings.Repeat(strings.Repeat("x", 250)+"\n", 6)
	_, breakdown := Score(cv, nil, "")
	assert.Equal(t, 5.0, breakdown.Formatting)
}

func TestScore_Deterministic(t *testing.T) {
	cv := fullContactCV + "Senior Python Developer with Flask and Docker."
	keywords := []string{"python", "flask", "docker", "sql"}
	firstTotal, firstBreakdown := Score(cv, keywords, "Senior Python Developer")
	for i := 0; i < 5; i++ {
		total, breakdown := Score(cv, keywords, "Senior Python Developer")
		assert.Equal(t, firstTotal, total)
		assert.Equal(t, firstBreakdown, breakdown)
	}
}

func TestScore_PerfectCV(t *testing.T) {
	cv := fullContactCV +
		"Senior Python Developer\n" +
		strings.Repeat("Python Flask SQL Docker experience across production systems. ", 30)
	total, breakdown := Score(cv, []string{"python", "flask", "sql", "docker"}, "Senior Python Developer")
	assert.Equal(t, 100, total)
	assert.Equal(t, 40.0, breakdown.Keywords)
}

func TestScore_EmptyCV(t *testing.T) {
	total, breakdown := Score("", nil, "")
	// Neutral keyword credit plus untouched formatting weight.
	assert.Equal(t, 30, total)
	assert.Equal(t, 10.0, breakdown.Formatting)
}
