// Package analysis orchestrates a full CV-against-job-posting inspection:
// ingestion, ATS detection, scoring, tips and the optional revamp.
package analysis

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-inspector/internal/ats"
	"github.com/jonathan/ats-inspector/internal/contact"
	"github.com/jonathan/ats-inspector/internal/ingestion"
	"github.com/jonathan/ats-inspector/internal/keywords"
	"github.com/jonathan/ats-inspector/internal/revamp"
	"github.com/jonathan/ats-inspector/internal/scoring"
	"github.com/jonathan/ats-inspector/internal/tips"
)

// Options describes one analysis request. Exactly one of JobURL/JobText is
// typically set; both empty is allowed and degrades to a keywordless score.
// The CV arrives either as pre-extracted text or as a raw document.
type Options struct {
	JobURL   string
	JobText  string
	JobTitle string // optional; guessed from the job text when empty

	CVText     string // pre-extracted CV text, wins over CVData
	CVFilename string
	CVData     []byte

	TopN       int // keyword count, DefaultTopN when zero
	UseBrowser bool
	Verbose    bool
}

// Report is the request-scoped result of one analysis. All fields are value
// objects; nothing here is shared between requests.
type Report struct {
	ATS       string            `json:"ats"`
	Score     int               `json:"score"`
	Breakdown scoring.Breakdown `json:"breakdown"`
	Keywords  []string          `json:"keywords"`
	JobTitle  string            `json:"job_title,omitempty"`
	Tips      []string          `json:"tips"`
	Contact   contact.Info      `json:"-"`
	Revamp    *revamp.Document  `json:"revamp,omitempty"`
}

// Run executes the analysis. The job source fetch and the CV document parse
// are independent and run concurrently. Upstream failures degrade to empty
// text rather than failing the request; Run itself only reports hard
// environment errors, never bad input.
func Run(ctx context.Context, opts Options) (*Report, error) {
	var (
		source *ingestion.Source
		cvText = opts.CVText
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		switch {
		case opts.JobURL != "":
			source = ingestion.FromURL(gctx, opts.JobURL, opts.UseBrowser, opts.Verbose)
			if opts.JobText != "" {
				// Pasted text wins over page extraction when both are given;
				// the fetched HTML is still used for signature matching.
				source.Text = ingestion.CleanText(opts.JobText)
			}
		default:
			source = ingestion.FromText(opts.JobText)
		}
		return nil
	})

	if cvText == "" && len(opts.CVData) > 0 {
		g.Go(func() error {
			text, err := ingestion.DocumentText(opts.CVFilename, opts.CVData)
			if err != nil {
				// A corrupt document scores as an empty CV.
				log.Printf("CV extraction degraded for %s: %v", opts.CVFilename, err)
				return nil
			}
			cvText = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	jobKeywords := keywords.Extract(source.Text, opts.TopN)

	jobTitle := opts.JobTitle
	if jobTitle == "" {
		jobTitle = ingestion.GuessTitle(source.Text)
	}

	atsName := ats.Detect(source.RawURL, source.RawHTML)

	total, breakdown := scoring.Score(cvText, jobKeywords, jobTitle)

	report := &Report{
		ATS:       atsName,
		Score:     total,
		Breakdown: breakdown,
		Keywords:  jobKeywords,
		JobTitle:  jobTitle,
		Tips:      tips.Build(total, atsName, cvText, jobKeywords),
		Contact:   contact.Find(cvText),
	}

	if total < tips.GoodScoreThreshold {
		report.Revamp = revamp.Compose(cvText, report.Contact.Email, report.Contact.Phone, jobTitle, jobKeywords)
	}

	return report, nil
}
