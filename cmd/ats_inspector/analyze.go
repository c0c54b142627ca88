package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-inspector/internal/analysis"
	"github.com/jonathan/ats-inspector/internal/config"
	"github.com/jonathan/ats-inspector/internal/ingestion"
	"github.com/jonathan/ats-inspector/internal/keywords"
	"github.com/jonathan/ats-inspector/internal/observability"
	"github.com/jonathan/ats-inspector/internal/revamp"
	"github.com/jonathan/ats-inspector/internal/tips"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a CV against a job posting",
	Long: `Fetches or reads a job posting, detects the employer's applicant tracking
system, extracts the top keywords and scores the CV against them. When the
score falls below the good-score threshold an ATS-friendly rewrite of the CV
is produced.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeJob        string
	analyzeJobURL     string
	analyzeJobText    string
	analyzeCV         string
	analyzeTitle      string
	analyzeTopN       int
	analyzeOut        string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url and --job-text)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Pasted job advert text")
	analyzeCmd.Flags().StringVarP(&analyzeCV, "cv", "c", "", "Path to the CV document (.pdf, .docx or .txt)")
	analyzeCmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "Target job title (guessed from the posting when empty)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "Number of keywords to extract from the posting")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to write the revamped CV Markdown to")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress boxes instead of raw JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// CLI flags override config file values, but only when explicitly set.
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("job-text") {
		cfg.JobText = analyzeJobText
	}
	if cmd.Flags().Changed("cv") {
		cfg.CV = analyzeCV
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = analyzeTitle
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = analyzeTopN
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = analyzeOut
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{TopN: keywords.DefaultTopN})

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" && cfg.JobText == "" {
		return fmt.Errorf("a job source is required: provide --job, --job-url or --job-text")
	}
	if cfg.CV == "" {
		return fmt.Errorf("--cv is required")
	}

	opts := analysis.Options{
		JobURL:     cfg.JobURL,
		JobText:    cfg.JobText,
		JobTitle:   cfg.Title,
		TopN:       cfg.TopN,
		UseBrowser: cfg.UseBrowser,
		Verbose:    cfg.Verbose,
	}

	// A job file is pre-read into pasted text; the URL path stays lazy so
	// the fetch can run concurrently with CV parsing.
	if cfg.Job != "" {
		source, err := ingestion.FromFile(cfg.Job)
		if err != nil {
			return err
		}
		opts.JobText = source.Text
	}

	cvText, err := ingestion.DocumentTextFromFile(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to extract CV text: %w", err)
	}
	opts.CVText = cvText

	report, err := analysis.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printVerboseReport(&cfg, &opts, report)
	} else {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	}

	if cfg.Out != "" {
		if report.Revamp == nil {
			_, _ = fmt.Fprintf(os.Stdout, "Score %d is at or above %d; no revamp written\n",
				report.Score, tips.GoodScoreThreshold)
			return nil
		}
		markdown := revamp.RenderMarkdown(report.Revamp)
		if err := os.WriteFile(cfg.Out, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("failed to write revamped CV: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Revamped CV written to: %s\n", cfg.Out)
	}

	return nil
}

func printVerboseReport(cfg *config.Config, opts *analysis.Options, report *analysis.Report) {
	printer := observability.NewPrinter(os.Stdout)

	// The posting text is only at hand when it came from a file or was
	// pasted; URL fetches are summarized by the report alone.
	if opts.JobText != "" {
		meta := ingestion.NewMetadata(opts.JobText, cfg.JobURL)
		meta.Platform = report.ATS
		printer.PrintSourceSummary(meta)
	}

	printer.PrintKeywords(report.Keywords)
	printer.PrintBreakdown(report)
	printer.PrintTips(report.Tips)
}
