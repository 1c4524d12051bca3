package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/screening/internal/extract"
	"github.com/hireflow/screening/internal/model"
	"github.com/hireflow/screening/internal/response"
	"github.com/hireflow/screening/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	screenResult *response.ScreeningResult
	screenErr    error
	summary      string
	summaryErr   error
	parsed       string
	parseErr     error
}

func (f *fakeService) ScreenCandidate(_ context.Context, _ string) (*response.ScreeningResult, error) {
	return f.screenResult, f.screenErr
}

func (f *fakeService) SummarizeJD(_ context.Context, _ string) (string, error) {
	return f.summary, f.summaryErr
}

func (f *fakeService) ParseResume(_ context.Context, _ string) (string, error) {
	return f.parsed, f.parseErr
}

func newTestApp(svc *fakeService) *fiber.App {
	app := fiber.New()
	h := NewScreeningHandler(svc)
	// Register without the rate limiter so repeated test requests pass.
	app.Post("/jd_summarize", h.SummarizeJD)
	app.Post("/candidate_screening", h.ScreenCandidate)
	app.Post("/parse_cv", h.ParseCV)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestScreenCandidate_MissingEmail(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp := postJSON(t, app, "/candidate_screening", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email is required", decodeBody(t, resp)["error"])
}

func TestScreenCandidate_UnknownCandidate(t *testing.T) {
	app := newTestApp(&fakeService{screenErr: usecase.ErrCandidateNotFound})

	resp := postJSON(t, app, "/candidate_screening", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Candidate not found", decodeBody(t, resp)["error"])
}

func TestScreenCandidate_ShortlistedShape(t *testing.T) {
	app := newTestApp(&fakeService{screenResult: &response.ScreeningResult{
		Message:             "Candidate Jane Doe added to the database with status 'shortlisted'.",
		Status:              "Shortlisted",
		Score:               80,
		CandidateFitSummary: "great fit",
	}})

	resp := postJSON(t, app, "/candidate_screening", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Shortlisted", body["status"])
	assert.Equal(t, float64(80), body["score"])
	assert.Equal(t, "great fit", body["candidate_fit_summary"])
	assert.NotContains(t, body, "rejection_email")
}

func TestScreenCandidate_RejectedShape(t *testing.T) {
	app := newTestApp(&fakeService{screenResult: &response.ScreeningResult{
		Message: "Candidate Jane Doe added to the database with status 'rejected'.",
		Status:  "Rejected",
		Score:   45,
		RejectionEmail: &model.Notification{
			Subject:  "Update on Your Application for Acme",
			Greeting: "Dear Jane Doe,",
			Body:     "• reason",
			Closing:  "Sincerely,\nHR Team at Acme",
		},
	}})

	resp := postJSON(t, app, "/candidate_screening", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Rejected", body["status"])
	assert.NotContains(t, body, "candidate_fit_summary")

	email, ok := body["rejection_email"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Update on Your Application for Acme", email["subject"])
}

func TestScreenCandidate_DownloadFailure(t *testing.T) {
	app := newTestApp(&fakeService{screenErr: extract.ErrDownload})

	resp := postJSON(t, app, "/candidate_screening", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestSummarizeJD_MissingField(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp := postJSON(t, app, "/jd_summarize", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please provide a document file.", decodeBody(t, resp)["error"])
}

func TestSummarizeJD_Success(t *testing.T) {
	app := newTestApp(&fakeService{summary: "the summary"})

	resp := postJSON(t, app, "/jd_summarize", `{"jd_file":"https://files.example.com/jd.pdf"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "the summary", decodeBody(t, resp)["summary"])
}

func TestSummarizeJD_JobNotFound(t *testing.T) {
	app := newTestApp(&fakeService{summaryErr: usecase.ErrJobNotFound})

	resp := postJSON(t, app, "/jd_summarize", `{"jd_file":"https://files.example.com/jd.pdf"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Job description not found", decodeBody(t, resp)["error"])
}

func TestParseCV_MissingField(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp := postJSON(t, app, "/parse_cv", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseCV_ReturnsRawJSON(t *testing.T) {
	app := newTestApp(&fakeService{parsed: `{"firstName": "Jane", "skills": ["Go"]}`})

	resp := postJSON(t, app, "/parse_cv", `{"cv_file":"https://files.example.com/cv.pdf"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName": "Jane", "skills": ["Go"]}`, string(raw))
}

func TestParseCV_UnsupportedFormat(t *testing.T) {
	app := newTestApp(&fakeService{parseErr: extract.ErrUnsupportedFormat})

	resp := postJSON(t, app, "/parse_cv", `{"cv_file":"https://files.example.com/cv.odt"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
