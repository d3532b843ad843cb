package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/models"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) AnalyzeATS(ctx context.Context, resumeText string) (models.AnalysisResult, error) {
	args := m.Called(ctx, resumeText)
	if r := args.Get(0); r != nil {
		return r.(models.AnalysisResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyzer) AnalyzeMatch(ctx context.Context, resumeText, jdText string) (models.AnalysisResult, error) {
	args := m.Called(ctx, resumeText, jdText)
	if r := args.Get(0); r != nil {
		return r.(models.AnalysisResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyzer) CompareJDs(ctx context.Context, resumeText string, jdTexts []string) (*models.ComparisonResult, error) {
	args := m.Called(ctx, resumeText, jdTexts)
	if r := args.Get(0); r != nil {
		return r.(*models.ComparisonResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) ExtractFromFile(filePath string) (string, error) {
	args := m.Called(filePath)
	return args.String(0), args.Error(1)
}

func (m *mockExtractor) ExtractFromURL(ctx context.Context, docURL string) (string, error) {
	args := m.Called(ctx, docURL)
	return args.String(0), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) SaveUpload(file *multipart.FileHeader) (string, string, error) {
	args := m.Called(file)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockStorage) GetFilePath(filename string) string {
	args := m.Called(filename)
	return args.String(0)
}

func (m *mockStorage) DeleteFile(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}

func (m *mockStorage) EnsureUploadDir() error {
	args := m.Called()
	return args.Error(0)
}

func newTestApp(analyzer *mockAnalyzer, extractor *mockExtractor, storage *mockStorage) *fiber.App {
	app := fiber.New()

	handler := NewAnalyzeHandler(analyzer, extractor, storage, 10*1024*1024)
	health := NewHealthHandler()

	app.Get("/health", health.HandleHealth)
	api := app.Group("/api")
	api.Post("/ats-score", handler.HandleATSScore)
	api.Post("/jd-match", handler.HandleJDMatch)
	api.Post("/compare-jds", handler.HandleCompareJDs)

	return app
}

func validResume() string {
	return "Professional experience with Python and AWS. " +
		strings.Repeat("Built and operated distributed backend services at scale. ", 10)
}

func validJD() string {
	return strings.Repeat("We are hiring a backend engineer to build reliable services. ", 5)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (*http.Response, models.Envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope models.Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}

func TestHandleATSScore_MissingInputs(t *testing.T) {
	analyzer := new(mockAnalyzer)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/ats-score", url.Values{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", envelope.Status)
	assert.Contains(t, envelope.Error, "Either 'file' or 'resume_text' must be provided")
	analyzer.AssertNotCalled(t, "AnalyzeATS", mock.Anything, mock.Anything)
}

func TestHandleATSScore_ShortResumeText(t *testing.T) {
	analyzer := new(mockAnalyzer)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/ats-score", url.Values{
		"resume_text": {"too short"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Error, "Resume is too short or missing key sections")
	analyzer.AssertNotCalled(t, "AnalyzeATS", mock.Anything, mock.Anything)
}

func TestHandleATSScore_WithResumeText(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("AnalyzeATS", mock.Anything, mock.Anything).
		Return(models.AnalysisResult{"ats_score": 85.0}, nil)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/ats-score", url.Values{
		"resume_text": {validResume()},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", envelope.Status)
	assert.NotEmpty(t, envelope.Timestamp)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 85.0, data["ats_score"])
	analyzer.AssertExpectations(t)
}

func TestHandleATSScore_FileUpload(t *testing.T) {
	analyzer := new(mockAnalyzer)
	extractor := new(mockExtractor)
	storage := new(mockStorage)

	storage.On("SaveUpload", mock.Anything).Return("resume_abc.pdf", "./uploads/resume_abc.pdf", nil)
	storage.On("DeleteFile", "resume_abc.pdf").Return(nil)
	extractor.On("ExtractFromFile", "./uploads/resume_abc.pdf").Return(validResume(), nil)
	analyzer.On("AnalyzeATS", mock.Anything, mock.Anything).
		Return(models.AnalysisResult{"ats_score": 70.0}, nil)

	app := newTestApp(analyzer, extractor, storage)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	part.Write([]byte("%PDF-1.4 fake"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/ats-score", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// The spooled upload must be gone before the response.
	storage.AssertCalled(t, "DeleteFile", "resume_abc.pdf")
	analyzer.AssertExpectations(t)
}

func TestHandleATSScore_UnsupportedExtension(t *testing.T) {
	analyzer := new(mockAnalyzer)
	storage := new(mockStorage)
	app := newTestApp(analyzer, new(mockExtractor), storage)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	part.Write([]byte("plain text resume"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/ats-score", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	storage.AssertNotCalled(t, "SaveUpload", mock.Anything)
	analyzer.AssertNotCalled(t, "AnalyzeATS", mock.Anything, mock.Anything)
}

func TestHandleJDMatch_MissingJD(t *testing.T) {
	analyzer := new(mockAnalyzer)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/jd-match", url.Values{
		"resume_text": {validResume()},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Error, "Job description must be at least 200 characters")
	analyzer.AssertNotCalled(t, "AnalyzeMatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleJDMatch_Success(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("AnalyzeMatch", mock.Anything, mock.Anything, mock.Anything).
		Return(models.AnalysisResult{"overall_match_score": 72.0}, nil)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/jd-match", url.Values{
		"resume_text": {validResume()},
		"jd_text":     {validJD()},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", envelope.Status)
	analyzer.AssertExpectations(t)
}

func TestHandleCompareJDs_NoJDs(t *testing.T) {
	analyzer := new(mockAnalyzer)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/compare-jds", url.Values{
		"resume_text": {validResume()},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Error, "At least one job description is required")
	analyzer.AssertNotCalled(t, "CompareJDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCompareJDs_ShortJD(t *testing.T) {
	analyzer := new(mockAnalyzer)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/compare-jds", url.Values{
		"resume_text": {validResume()},
		"jd_texts":    {validJD(), "too short"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Error, "All job descriptions must be at least 200 characters")
	analyzer.AssertNotCalled(t, "CompareJDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCompareJDs_Success(t *testing.T) {
	analyzer := new(mockAnalyzer)
	best := 0
	analyzer.On("CompareJDs", mock.Anything, mock.Anything, mock.Anything).
		Return(&models.ComparisonResult{
			TotalJDs:       2,
			Results:        []models.AnalysisResult{{"overall_match_score": 90.0, "jd_index": 1}},
			BestMatchIndex: &best,
		}, nil)
	app := newTestApp(analyzer, new(mockExtractor), new(mockStorage))

	resp, envelope := postForm(t, app, "/api/compare-jds", url.Values{
		"resume_text": {validResume()},
		"jd_texts":    {validJD(), validJD()},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", envelope.Status)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 2.0, data["total_jds"])
	assert.Equal(t, 0.0, data["best_match_index"])
	analyzer.AssertExpectations(t)
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(new(mockAnalyzer), new(mockExtractor), new(mockStorage))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope models.Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "success", envelope.Status)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
}
