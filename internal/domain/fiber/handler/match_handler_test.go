package handler

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rahuldohare007/resume-matcher/internal/dto"
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"github.com/rahuldohare007/resume-matcher/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(uc MatchUsecaseInterface) *fiber.App {
	app := fiber.New()
	NewMatchHandler(uc).RegisterRoutes(app)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func jsonRequest(method, target string, payload any) *http.Request {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealth(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("ProviderName").Return("sbert/all-MiniLM-L6-v2")
	uc.On("ProviderDimension").Return(384)

	app := newTestApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "sbert/all-MiniLM-L6-v2", data["embedding_provider"])
}

func TestCalculateSimilarity_Success(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("CalculateSimilarity", mock.Anything, mock.Anything, mock.Anything).
		Return(&dto.SimilarityResult{
			SimilarityScore: 0.83,
			Category:        "Excellent Match",
			Confidence:      "high",
			MatchedKeywords: []string{"python"},
			MissingKeywords: []string{"kubernetes"},
		}, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/calculate-similarity", dto.SimilarityRequest{
		ResumeText:     "Python developer with years of backend experience",
		JobDescription: "Looking for a Python engineer with Kubernetes skills",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.InDelta(t, 0.83, data["similarity_score"].(float64), 1e-6)
	assert.Equal(t, "Excellent Match", data["category"])
	uc.AssertExpectations(t)
}

func TestCalculateSimilarity_TooShort(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	app := newTestApp(uc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/calculate-similarity", dto.SimilarityRequest{
		ResumeText:     "short",
		JobDescription: "Looking for a Python engineer with Kubernetes skills",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "resume text is too short")
	uc.AssertNotCalled(t, "CalculateSimilarity", mock.Anything, mock.Anything, mock.Anything)
}

func TestBatchSimilarity_Success(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("BatchSimilarity", mock.Anything, []string{"resume one", "resume two"}, mock.Anything).
		Return(&dto.BatchSimilarityData{
			Results: []dto.BatchSimilarityResult{
				{Index: 1, SimilarityScore: 0.9},
				{Index: 0, SimilarityScore: 0.4},
			},
			TotalProcessed: 2,
		}, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/batch-similarity", dto.BatchSimilarityRequest{
		Resumes:        []string{"resume one", "resume two"},
		JobDescription: "Looking for a Python engineer",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total_processed"])
	results := data["results"].([]any)
	first := results[0].(map[string]any)
	assert.Equal(t, float64(1), first["index"])
}

func TestBatchSimilarity_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload dto.BatchSimilarityRequest
		wantMsg string
	}{
		{
			"empty batch",
			dto.BatchSimilarityRequest{JobDescription: "Looking for a Python engineer"},
			"at least one resume is required",
		},
		{
			"too many resumes",
			dto.BatchSimilarityRequest{
				Resumes:        make([]string, 101),
				JobDescription: "Looking for a Python engineer",
			},
			"maximum 100 resumes",
		},
		{
			"short job description",
			dto.BatchSimilarityRequest{Resumes: []string{"resume"}, JobDescription: "short"},
			"job description is too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.payload.Resumes {
				if tt.payload.Resumes[i] == "" {
					tt.payload.Resumes[i] = "resume text"
				}
			}

			app := newTestApp(new(mocks.MockMatchUsecase))
			resp, err := app.Test(jsonRequest(http.MethodPost, "/batch-similarity", tt.payload))

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Contains(t, body["message"], tt.wantMsg)
		})
	}
}

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>` + body + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText_UnicodeCharCount(t *testing.T) {
	const content = "José García, Développeur de données, 数据工程师"

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "resume.docx")
	part.Write(buildDocx(t, content))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/extract-text", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	app := newTestApp(new(mocks.MockMatchUsecase))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	respBody := decodeBody(t, resp)
	data := respBody["data"].(map[string]any)
	assert.Equal(t, content, data["text"])
	assert.Equal(t, float64(utf8.RuneCountInString(content)), data["char_count"])
}

func TestExtractText_RejectsUnsupportedExtension(t *testing.T) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "resume.txt")
	part.Write([]byte("plain text resume"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/extract-text", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	app := newTestApp(new(mocks.MockMatchUsecase))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	respBody := decodeBody(t, resp)
	assert.Contains(t, respBody["message"], "only PDF and DOCX")
}

func TestExtractText_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/extract-text", strings.NewReader(""))

	app := newTestApp(new(mocks.MockMatchUsecase))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResult_Success(t *testing.T) {
	taskID := uuid.New()
	uc := new(mocks.MockMatchUsecase)
	uc.On("GetResult", taskID.String()).Return(&model.MatchTask{
		ID:              taskID,
		Status:          model.TaskStatusCompleted,
		SimilarityScore: 0.72,
		Category:        "Good Match",
		MatchedKeywords: `["python"]`,
		MissingKeywords: `["kubernetes"]`,
	}, nil)

	app := newTestApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/result/"+taskID.String(), nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, model.TaskStatusCompleted, data["status"])
	assert.Equal(t, []any{"python"}, data["matched_keywords"])
}

func TestResult_NotFound(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("GetResult", "unknown").Return(nil, assert.AnError)

	app := newTestApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/result/unknown", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateJob_Success(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("CreateJob", mock.Anything, "Backend Engineer", mock.Anything).
		Return(&model.Job{Title: "Backend Engineer"}, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/jobs", dto.CreateJobRequest{
		Title:   "Backend Engineer",
		Content: "Go, PostgreSQL, Docker and cloud experience required",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestCreateJob_MissingFields(t *testing.T) {
	app := newTestApp(new(mocks.MockMatchUsecase))
	resp, err := app.Test(jsonRequest(http.MethodPost, "/jobs", dto.CreateJobRequest{Title: "", Content: ""}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatch_InvalidJobID(t *testing.T) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	writer.WriteField("job_id", "not-a-uuid")
	part, _ := writer.CreateFormFile("resume", "resume.pdf")
	part.Write([]byte("fake pdf"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/match", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	app := newTestApp(new(mocks.MockMatchUsecase))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	respBody := decodeBody(t, resp)
	assert.Contains(t, respBody["message"], "job_id")
}

func TestSearchJobs_Success(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("SearchJobs", mock.Anything, mock.Anything, 5).
		Return([]model.Job{{Title: "ML Engineer"}}, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/jobs/search", dto.JobSearchRequest{
		ResumeText: "Python developer with machine learning experience",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestSearchJobs_CapsTopK(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("SearchJobs", mock.Anything, mock.Anything, maxSearchTopK).
		Return([]model.Job{}, nil)

	app := newTestApp(uc)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/jobs/search", dto.JobSearchRequest{
		ResumeText: "Python developer with machine learning experience",
		TopK:       500,
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestListJobs(t *testing.T) {
	uc := new(mocks.MockMatchUsecase)
	uc.On("ListJobs", 2, 5).Return([]model.Job{{Title: "One"}}, int64(11), nil)

	app := newTestApp(uc)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs?page=2&page_size=5", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(11), pagination["total_items"])
	assert.Equal(t, float64(3), pagination["total_pages"])
}
