package analysis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobAdvert = "Senior Python Developer. Requirements: Python, Flask, SQL, Docker."

func TestRun_EndToEndLowScore(t *testing.T) {
	report, err := Run(context.Background(), Options{
		JobText: jobAdvert,
		CVText:  "I enjoy gardening and have no relevant history.",
	})
	require.NoError(t, err)

	for _, kw := range []string{"python", "developer", "requirements", "flask", "docker"} {
		assert.Contains(t, report.Keywords, kw)
	}

	assert.Less(t, report.Score, 40)
	assert.Equal(t, "Unknown/Custom", report.ATS)

	var keywordTip string
	for _, tip := range report.Tips {
		if strings.Contains(tip, "job-specific keywords") {
			keywordTip = tip
		}
	}
	require.NotEmpty(t, keywordTip)
	assert.Contains(t, keywordTip, "python")
	assert.Contains(t, keywordTip, "flask")
	assert.Contains(t, keywordTip, "docker")

	require.NotNil(t, report.Revamp)
	assert.Contains(t, report.Revamp.Original, "I enjoy gardening and have no relevant history.")
}

func TestRun_HighScoreSkipsRevamp(t *testing.T) {
	cv := "Jane Doe\njane@example.com\n+1 555-123-4567\n\nSenior Python Developer\n\nWork Experience\n" +
		strings.Repeat("Python Flask SQL Docker Requirements Senior Developer. ", 30)

	report, err := Run(context.Background(), Options{
		JobText:  jobAdvert,
		JobTitle: "Senior Python Developer",
		CVText:   cv,
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, report.Score, 85)
	assert.Nil(t, report.Revamp)
	require.Len(t, report.Tips, 1)
	assert.Contains(t, report.Tips[0], "ATS-friendly")
}

func TestRun_GuessesTitleFromFirstLine(t *testing.T) {
	report, err := Run(context.Background(), Options{
		JobText: "Backend Engineer\nGo, Postgres, Kafka.",
		CVText:  "Backend Engineer with Go and Postgres.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", report.JobTitle)
	assert.Equal(t, 15.0, report.Breakdown.Title)
}

func TestRun_DetectsATSFromJobURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		long := strings.Repeat("Build distributed systems in Go. ", 15)
		_, _ = w.Write([]byte(`<html><body><div class="description">` + long + `</div>
			<footer>powered by greenhouse</footer></body></html>`))
	}))
	defer server.Close()

	report, err := Run(context.Background(), Options{
		JobURL: server.URL,
		CVText: "plain cv",
	})
	require.NoError(t, err)
	assert.Equal(t, "Greenhouse", report.ATS)
	assert.Contains(t, report.Keywords, "distributed")
}

func TestRun_PastedTextWinsOverPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>` + strings.Repeat("page words only here. ", 20) + `</main></body></html>`))
	}))
	defer server.Close()

	report, err := Run(context.Background(), Options{
		JobURL:  server.URL,
		JobText: "Rust Engineer\nRust tokio systems.",
		CVText:  "cv",
	})
	require.NoError(t, err)
	assert.Contains(t, report.Keywords, "rust")
	assert.NotContains(t, report.Keywords, "page")
}

func TestRun_CorruptCVDegradesToEmpty(t *testing.T) {
	report, err := Run(context.Background(), Options{
		JobText:    jobAdvert,
		CVFilename: "cv.pdf",
		CVData:     []byte("not really a pdf"),
	})
	require.NoError(t, err)
	assert.Less(t, report.Score, 40)
	require.NotNil(t, report.Revamp)
	assert.Empty(t, report.Revamp.Original)
}

func TestRun_EmptyEverything(t *testing.T) {
	report, err := Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	assert.Equal(t, "Unknown/Custom", report.ATS)
	assert.Empty(t, report.Keywords)
}

func TestRun_Deterministic(t *testing.T) {
	opts := Options{JobText: jobAdvert, CVText: "Python and Docker background."}
	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Run(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, first.Score, again.Score)
		assert.Equal(t, first.Keywords, again.Keywords)
		assert.Equal(t, first.Tips, again.Tips)
	}
}
