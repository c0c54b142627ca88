package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	source := FromText("Senior Go Engineer\r\n\r\nBuild services.")
	assert.Empty(t, source.RawURL)
	assert.Equal(t, "Senior Go Engineer\n\nBuild services.", source.Text)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend Engineer\r\nGo and SQL."), 0o644))

	source, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nGo and SQL.", source.Text)

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFromURL_ExtractsDescription(t *testing.T) {
	long := strings.Repeat("We need an engineer comfortable with Go and SQL. ", 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">` + long + `</div></body></html>`))
	}))
	defer server.Close()

	source := FromURL(context.Background(), server.URL, false, false)
	assert.Equal(t, server.URL, source.RawURL)
	assert.Contains(t, source.RawHTML, "job-description")
	assert.Contains(t, source.Text, "We need an engineer")
}

func TestFromURL_FetchFailureDegradesToEmpty(t *testing.T) {
	source := FromURL(context.Background(), "http://127.0.0.1:1/unreachable", false, false)
	assert.Equal(t, "http://127.0.0.1:1/unreachable", source.RawURL)
	assert.Empty(t, source.Text)
}

func TestFromURL_NonOKStillScansBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("<html><body>powered by greenhouse</body></html>"))
	}))
	defer server.Close()

	source := FromURL(context.Background(), server.URL, false, false)
	assert.Contains(t, source.RawHTML, "powered by greenhouse")
}

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("hello world", "https://example.com/job")
	assert.Equal(t, "https://example.com/job", meta.URL)
	assert.Equal(t, 11, meta.CharCount)
	assert.Equal(t, 2, meta.WordCount)
	assert.Len(t, meta.Hash, 64)
	require.NotEmpty(t, meta.Timestamp)

	jsonBytes, err := meta.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"word_count": 2`)
}
