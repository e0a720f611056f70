package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rahuldohare007/resume-matcher/internal/config"
	"github.com/rahuldohare007/resume-matcher/internal/dto"
	"github.com/rahuldohare007/resume-matcher/internal/middleware"
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"github.com/rahuldohare007/resume-matcher/internal/response"
	"github.com/rahuldohare007/resume-matcher/internal/util"
)

const (
	maxUploadSize = 10 * 1024 * 1024
	minTextLength = 10
	maxBatchSize  = 100
	maxSearchTopK = 20
)

type MatchUsecaseInterface interface {
	ProviderName() string
	ProviderDimension() int
	CalculateSimilarity(ctx context.Context, resumeText, jobDescription string) (*dto.SimilarityResult, error)
	BatchSimilarity(ctx context.Context, resumes []string, jobDescription string) (*dto.BatchSimilarityData, error)
	Submit(resumeText string, jobID uuid.UUID) (string, error)
	GetResult(id string) (*model.MatchTask, error)
	CreateJob(ctx context.Context, title, content string) (*model.Job, error)
	ListJobs(page, pageSize int) ([]model.Job, int64, error)
	SearchJobs(ctx context.Context, resumeText string, topK int) ([]model.Job, error)
}

type MatchHandler struct {
	uc MatchUsecaseInterface
}

func NewMatchHandler(uc MatchUsecaseInterface) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Health)
	app.Get("/health", h.Health)
	app.Post("/extract-text", middleware.RateLimiter(10, time.Minute), h.ExtractText)
	app.Post("/calculate-similarity", h.CalculateSimilarity)
	app.Post("/batch-similarity", h.BatchSimilarity)
	app.Post("/match", middleware.RateLimiter(10, time.Minute), h.Match)
	app.Get("/result/:id", h.Result)
	app.Post("/jobs", h.CreateJob)
	app.Get("/jobs", h.ListJobs)
	app.Post("/jobs/search", h.SearchJobs)
}

func (h *MatchHandler) Health(c *fiber.Ctx) error {
	appConfig := config.LoadAppConfig()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume Matcher NLP Service is running",
		Data: fiber.Map{
			"status":              "healthy",
			"version":             appConfig.Version,
			"timestamp":           time.Now().UTC().Format(time.RFC3339),
			"embedding_provider":  h.uc.ProviderName(),
			"embedding_dimension": h.uc.ProviderDimension(),
		},
	})
}

func (h *MatchHandler) ExtractText(c *fiber.Ctx) error {
	text, err := h.readUpload(c, "file")
	if err != nil {
		return err
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success extract text",
		Data: dto.ExtractionResult{
			Text:        text,
			WordCount:   util.WordCount(text),
			CharCount:   utf8.RuneCountInString(text),
			ExtractedAt: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func (h *MatchHandler) CalculateSimilarity(c *fiber.Ctx) error {
	var req dto.SimilarityRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if len(strings.TrimSpace(req.ResumeText)) < minTextLength {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("resume text is too short (minimum %d characters)", minTextLength),
		})
	}
	if len(strings.TrimSpace(req.JobDescription)) < minTextLength {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("job description is too short (minimum %d characters)", minTextLength),
		})
	}

	result, err := h.uc.CalculateSimilarity(c.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to calculate similarity",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success calculate similarity",
		Data:    result,
	})
}

func (h *MatchHandler) BatchSimilarity(c *fiber.Ctx) error {
	var req dto.BatchSimilarityRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if len(req.Resumes) == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "at least one resume is required",
		})
	}
	if len(req.Resumes) > maxBatchSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("maximum %d resumes allowed per batch", maxBatchSize),
		})
	}
	if len(strings.TrimSpace(req.JobDescription)) < minTextLength {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("job description is too short (minimum %d characters)", minTextLength),
		})
	}
	for i, resume := range req.Resumes {
		if strings.TrimSpace(resume) == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: fmt.Sprintf("resume at index %d is empty", i),
			})
		}
	}

	data, err := h.uc.BatchSimilarity(c.Context(), req.Resumes, req.JobDescription)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to process batch",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success process batch",
		Data:    data,
	})
}

func (h *MatchHandler) Match(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "valid job_id form field is required",
		}, err)
	}

	text, err := h.readUpload(c, "resume")
	if err != nil {
		return err
	}

	id, err := h.uc.Submit(text, jobID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit match task",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Success submit match task",
		Data:    fiber.Map{"id": id, "status": model.TaskStatusProcessing},
	})
}

func (h *MatchHandler) Result(c *fiber.Ctx) error {
	id := c.Params("id")
	task, err := h.uc.GetResult(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "match task not found",
		}, err)
	}

	data := dto.MatchTaskDTO{
		ID:              task.ID,
		JobID:           task.JobID,
		Status:          task.Status,
		SimilarityScore: task.SimilarityScore,
		KeywordScore:    task.KeywordScore,
		Category:        task.Category,
		MatchedKeywords: json.RawMessage(task.MatchedKeywords),
		MissingKeywords: json.RawMessage(task.MissingKeywords),
		FailReason:      task.FailReason,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get match result",
		Data:    data,
	})
}

func (h *MatchHandler) CreateJob(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(req.Title) == "" || len(strings.TrimSpace(req.Content)) < minTextLength {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "title and content are required",
		})
	}

	job, err := h.uc.CreateJob(c.Context(), req.Title, req.Content)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    job,
	})
}

func (h *MatchHandler) ListJobs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	jobs, total, err := h.uc.ListJobs(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list jobs",
		Data:       jobs,
		Pagination: response.NewPagination(page, pageSize, len(jobs), total),
	})
}

func (h *MatchHandler) SearchJobs(c *fiber.Ctx) error {
	var req dto.JobSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if len(strings.TrimSpace(req.ResumeText)) < minTextLength {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("resume text is too short (minimum %d characters)", minTextLength),
		})
	}
	if req.TopK <= 0 {
		req.TopK = 5
	}
	if req.TopK > maxSearchTopK {
		req.TopK = maxSearchTopK
	}

	jobs, err := h.uc.SearchJobs(c.Context(), req.ResumeText, req.TopK)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to search jobs",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search jobs",
		Data:    jobs,
	})
}

// readUpload validates a multipart upload and extracts its text. Validation
// failures are written to the response; callers just propagate the error.
func (h *MatchHandler) readUpload(c *fiber.Ctx, fieldName string) (string, error) {
	fileHeader, err := c.FormFile(fieldName)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file is required", fieldName),
		}, err)
	}

	if fileHeader.Size > maxUploadSize {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file size exceeds 10MB limit", fieldName),
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid file type, only PDF and DOCX files are allowed",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot open %s file", fieldName),
		}, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot read %s file", fieldName),
		}, err)
	}

	text, err := util.ExtractText(data, util.SanitizeFilename(fileHeader.Filename), config.LoadEmbeddingConfig().OCR)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("failed to extract %s text", fieldName),
		}, err)
	}
	if text == "" {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "no text could be extracted from the file",
		})
	}

	return text, nil
}
