package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/ats-inspector/internal/analysis"
	"github.com/jonathan/ats-inspector/internal/db"
	"github.com/jonathan/ats-inspector/internal/ingestion"
	"github.com/jonathan/ats-inspector/internal/revamp"
	"github.com/jonathan/ats-inspector/internal/server/middleware"
)

// maxUploadBytes caps the multipart form size for CV uploads.
const maxUploadBytes = 16 << 20

// AnalyzeRequest represents the JSON request body for /analyze. CV file
// uploads use multipart/form-data with the same field names instead.
type AnalyzeRequest struct {
	JobURL     string `json:"job_url,omitempty"`
	JobText    string `json:"job_text,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`
	CVText     string `json:"cv_text,omitempty"`
	TopN       int    `json:"top_n,omitempty"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// AnalyzeResponse is an analysis report plus the stored row ID when the
// report was persisted.
type AnalyzeResponse struct {
	ID string `json:"id,omitempty"`
	*analysis.Report
}

// AnalysisSummary is one row of the /analyses listing.
type AnalysisSummary struct {
	ID        string `json:"id"`
	JobURL    string `json:"job_url,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	ATS       string `json:"ats"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

// StoredAnalysis is the full representation of a stored analysis.
type StoredAnalysis struct {
	AnalysisSummary
	Breakdown json.RawMessage `json:"breakdown"`
	Keywords  json.RawMessage `json:"keywords"`
	Tips      json.RawMessage `json:"tips"`
	Revamp    json.RawMessage `json:"revamp,omitempty"`
}

// handleAnalyze runs an analysis and, when a database is configured,
// stores the report under the authenticated user.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	if opts.JobURL == "" && opts.JobText == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_url or job_text is required")
		return
	}
	if opts.CVText == "" && len(opts.CVData) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "A CV is required: upload a cv file or set cv_text")
		return
	}

	report, err := analysis.Run(r.Context(), *opts)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	resp := AnalyzeResponse{Report: report}
	if s.db != nil {
		id, err := s.saveReport(r, opts, report)
		if err != nil {
			// The analysis itself succeeded; log and return it unsaved.
			log.Printf("Failed to persist analysis: %v", err)
		} else {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// decodeAnalyzeRequest accepts either a JSON body or a multipart form
// with an optional "cv" file part.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (*analysis.Options, bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
			return nil, false
		}

		opts := &analysis.Options{
			JobURL:   r.FormValue("job_url"),
			JobText:  r.FormValue("job_text"),
			JobTitle: r.FormValue("job_title"),
			CVText:   r.FormValue("cv_text"),
		}
		if v := r.FormValue("top_n"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				s.errorResponse(w, http.StatusBadRequest, "top_n must be a non-negative integer")
				return nil, false
			}
			opts.TopN = n
		}
		if v := r.FormValue("use_browser"); v != "" {
			opts.UseBrowser, _ = strconv.ParseBool(v)
		}

		file, header, err := r.FormFile("cv")
		if err == nil {
			defer file.Close()
			if !ingestion.AllowedFile(header.Filename) {
				s.errorResponse(w, http.StatusBadRequest, "Unsupported CV format: "+header.Filename)
				return nil, false
			}
			data, err := io.ReadAll(file)
			if err != nil {
				s.errorResponse(w, http.StatusBadRequest, "Failed to read CV upload: "+err.Error())
				return nil, false
			}
			opts.CVFilename = header.Filename
			opts.CVData = data
		} else if err != http.ErrMissingFile {
			s.errorResponse(w, http.StatusBadRequest, "Invalid cv file part: "+err.Error())
			return nil, false
		}

		return opts, true
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if req.TopN < 0 {
		s.errorResponse(w, http.StatusBadRequest, "top_n must be a non-negative integer")
		return nil, false
	}
	return &analysis.Options{
		JobURL:     req.JobURL,
		JobText:    req.JobText,
		JobTitle:   req.JobTitle,
		CVText:     req.CVText,
		TopN:       req.TopN,
		UseBrowser: req.UseBrowser,
	}, true
}

// saveReport persists a report for the authenticated user and returns
// the new row ID.
func (s *Server) saveReport(r *http.Request, opts *analysis.Options, report *analysis.Report) (uuid.UUID, error) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return uuid.Nil, err
	}

	row := &db.Analysis{
		UserID:   userID,
		JobURL:   opts.JobURL,
		JobTitle: report.JobTitle,
		ATS:      report.ATS,
		Score:    report.Score,
	}
	if row.Breakdown, err = json.Marshal(report.Breakdown); err != nil {
		return uuid.Nil, err
	}
	if row.Keywords, err = json.Marshal(report.Keywords); err != nil {
		return uuid.Nil, err
	}
	if row.Tips, err = json.Marshal(report.Tips); err != nil {
		return uuid.Nil, err
	}
	if report.Revamp != nil {
		if row.Revamp, err = json.Marshal(report.Revamp); err != nil {
			return uuid.Nil, err
		}
	}

	return s.db.SaveAnalysis(r.Context(), row)
}

// handleListAnalyses returns the authenticated user's analyses, newest
// first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
	}

	rows, err := s.db.ListAnalyses(r.Context(), userID, limit)
	if err != nil {
		log.Printf("Failed to list analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	summaries := make([]AnalysisSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, summarize(&rows[i]))
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

// handleGetAnalysis returns one stored analysis in full.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	row, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}

	resp := StoredAnalysis{
		AnalysisSummary: summarize(row),
		Breakdown:       json.RawMessage(row.Breakdown),
		Keywords:        json.RawMessage(row.Keywords),
		Tips:            json.RawMessage(row.Tips),
	}
	if len(row.Revamp) > 0 {
		resp.Revamp = json.RawMessage(row.Revamp)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetRevampMarkdown renders a stored revamp document as Markdown.
func (s *Server) handleGetRevampMarkdown(w http.ResponseWriter, r *http.Request) {
	row, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}
	if len(row.Revamp) == 0 {
		s.errorResponse(w, http.StatusNotFound, "Analysis has no revamp document")
		return
	}

	var doc revamp.Document
	if err := json.Unmarshal(row.Revamp, &doc); err != nil {
		log.Printf("Failed to decode stored revamp %s: %v", row.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to decode revamp document")
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, revamp.RenderMarkdown(&doc))
}

// handleDeleteAnalysis removes one stored analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	deleted, err := s.db.DeleteAnalysis(r.Context(), id, userID)
	if err != nil {
		log.Printf("Failed to delete analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, (&ErrAnalysisNotFound{ID: id}).Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// lookupAnalysis resolves the {id} path parameter to a stored analysis
// owned by the authenticated user, writing the error response itself.
func (s *Server) lookupAnalysis(w http.ResponseWriter, r *http.Request) (*db.Analysis, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return nil, false
	}

	row, err := s.db.GetAnalysis(r.Context(), id, userID)
	if err != nil {
		log.Printf("Failed to get analysis %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return nil, false
	}
	if row == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrAnalysisNotFound{ID: id}).Error())
		return nil, false
	}
	return row, true
}

func summarize(row *db.Analysis) AnalysisSummary {
	return AnalysisSummary{
		ID:        row.ID.String(),
		JobURL:    row.JobURL,
		JobTitle:  row.JobTitle,
		ATS:       row.ATS,
		Score:     row.Score,
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
}
