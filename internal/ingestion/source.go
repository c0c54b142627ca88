package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/ats-inspector/internal/fetch"
)

// Source is an immutable job advertisement source. Text derives from the raw
// HTML via the extraction cascade, or is supplied directly as pasted text.
type Source struct {
	RawURL  string
	RawHTML string
	Text    string
}

// FromText builds a Source from pasted job advert text.
func FromText(jobText string) *Source {
	return &Source{Text: CleanText(jobText)}
}

// FromFile builds a Source from a job posting text file.
func FromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	return FromText(string(data)), nil
}

// FromURL fetches a job posting page and extracts its description text.
//
// A failed fetch is not fatal: the returned Source simply carries empty HTML
// and text, and downstream scoring degrades gracefully. When useBrowser is
// set and the plain HTTP fetch yields too little text, the page is re-rendered
// in a headless browser before extraction.
func FromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) *Source {
	source := &Source{RawURL: urlStr}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		log.Printf("fetch failed for %s: %v", urlStr, err)
		if result == nil {
			return source
		}
		// Non-2xx responses still carry a body worth scanning for signatures.
	}
	source.RawHTML = result.HTML
	source.Text = fetch.ExtractJobText(result.HTML)

	if useBrowser && fetch.ShouldUseBrowser(source.Text) {
		if verbose {
			log.Printf("content too short (%d chars), falling back to browser rendering", len(source.Text))
		}
		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, verbose)
		if browserErr != nil {
			log.Printf("browser rendering failed: %v", browserErr)
		} else {
			source.RawHTML = browserHTML
			source.Text = fetch.ExtractJobText(browserHTML)
		}
	}

	source.Text = CleanText(source.Text)
	return source
}
