package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/rahuldohare007/resume-matcher/internal/dto"
	"github.com/rahuldohare007/resume-matcher/internal/matcher"
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"github.com/rahuldohare007/resume-matcher/internal/service"
)

const (
	keywordsPerSide = 30
	keywordsInReply = 20
)

type TaskStore interface {
	CreateTask(task *model.MatchTask) error
	UpdateTask(task *model.MatchTask) error
	FindTaskByID(id string) (*model.MatchTask, error)
}

type JobStore interface {
	CreateJob(job *model.Job) error
	FindJobByID(id string) (*model.Job, error)
	ListJobs(page, pageSize int) ([]model.Job, int64, error)
	SearchJobs(embedding pgvector.Vector, topK int) ([]model.Job, error)
}

type MatchUsecase struct {
	taskRepo TaskStore
	jobRepo  JobStore
	embedder service.EmbeddingServiceInterface
}

func NewMatchUsecase(taskRepo TaskStore, jobRepo JobStore, embedder service.EmbeddingServiceInterface) *MatchUsecase {
	return &MatchUsecase{taskRepo: taskRepo, jobRepo: jobRepo, embedder: embedder}
}

func (uc *MatchUsecase) ProviderName() string {
	return uc.embedder.Name()
}

func (uc *MatchUsecase) ProviderDimension() int {
	return uc.embedder.Dimension()
}

// CalculateSimilarity embeds both texts, scores their cosine similarity and
// runs the keyword analysis.
func (uc *MatchUsecase) CalculateSimilarity(ctx context.Context, resumeText, jobDescription string) (*dto.SimilarityResult, error) {
	vectors, err := uc.embedder.EmbedBatch(ctx, []string{resumeText, jobDescription})
	if err != nil {
		return nil, fmt.Errorf("failed to embed texts: %w", err)
	}

	score := matcher.Clamp01(matcher.CosineSimilarity(vectors[0], vectors[1]))

	resumeKeywords := matcher.ExtractKeywords(resumeText, keywordsPerSide)
	jobKeywords := matcher.ExtractKeywords(jobDescription, keywordsPerSide)
	matched, missing := matcher.MatchKeywords(resumeKeywords, jobKeywords)

	return &dto.SimilarityResult{
		SimilarityScore: score,
		KeywordScore:    matcher.KeywordScore(resumeKeywords, jobKeywords),
		Category:        matcher.Category(score),
		Confidence:      matcher.Confidence(score),
		MatchedKeywords: capList(matched, keywordsInReply),
		MissingKeywords: capList(missing, keywordsInReply),
		ResumeKeywords:  capList(resumeKeywords, keywordsInReply),
		JobKeywords:     capList(jobKeywords, keywordsInReply),
	}, nil
}

// BatchSimilarity scores every resume against one job description using a
// single embedding call, returning results sorted by score descending.
func (uc *MatchUsecase) BatchSimilarity(ctx context.Context, resumes []string, jobDescription string) (*dto.BatchSimilarityData, error) {
	texts := make([]string, 0, len(resumes)+1)
	texts = append(texts, resumes...)
	texts = append(texts, jobDescription)

	vectors, err := uc.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed batch: %w", err)
	}

	jobVector := vectors[len(vectors)-1]
	results := make([]dto.BatchSimilarityResult, 0, len(resumes))
	for i := range resumes {
		results = append(results, dto.BatchSimilarityResult{
			Index:           i,
			SimilarityScore: matcher.Clamp01(matcher.CosineSimilarity(vectors[i], jobVector)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	return &dto.BatchSimilarityData{
		Results:        results,
		TotalProcessed: len(results),
	}, nil
}

// Submit stores a processing task and finishes the scoring in the
// background.
func (uc *MatchUsecase) Submit(resumeText string, jobID uuid.UUID) (string, error) {
	if _, err := uc.jobRepo.FindJobByID(jobID.String()); err != nil {
		return "", fmt.Errorf("job not found: %w", err)
	}

	task := model.MatchTask{
		ResumeText:      resumeText,
		JobID:           jobID,
		Status:          model.TaskStatusProcessing,
		MatchedKeywords: "[]",
		MissingKeywords: "[]",
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uc.taskRepo.CreateTask(&task); err != nil {
		return "", err
	}

	go uc.RunTask(&task)

	return task.ID.String(), nil
}

// RunTask scores one stored task against its job. Failures are recorded on
// the row instead of returned to a caller.
func (uc *MatchUsecase) RunTask(task *model.MatchTask) error {
	ctx := context.Background()

	fail := func(err error) error {
		log.Printf("match task %s failed: %v", task.ID, err)
		task.Status = model.TaskStatusFailed
		task.FailReason = err.Error()
		_ = uc.taskRepo.UpdateTask(task)
		return err
	}

	job, err := uc.jobRepo.FindJobByID(task.JobID.String())
	if err != nil {
		return fail(fmt.Errorf("failed to load job: %w", err))
	}

	resumeVector, err := uc.embedder.Embed(ctx, task.ResumeText)
	if err != nil {
		return fail(fmt.Errorf("failed to embed resume: %w", err))
	}

	score := matcher.Clamp01(matcher.CosineSimilarity(resumeVector, job.Embedding.Slice()))

	resumeKeywords := matcher.ExtractKeywords(task.ResumeText, keywordsPerSide)
	jobKeywords := matcher.ExtractKeywords(job.Content, keywordsPerSide)
	matched, missing := matcher.MatchKeywords(resumeKeywords, jobKeywords)

	matchedJSON, _ := json.Marshal(capList(matched, keywordsInReply))
	missingJSON, _ := json.Marshal(capList(missing, keywordsInReply))

	task.SimilarityScore = score
	task.KeywordScore = matcher.KeywordScore(resumeKeywords, jobKeywords)
	task.Category = matcher.Category(score)
	task.MatchedKeywords = string(matchedJSON)
	task.MissingKeywords = string(missingJSON)
	task.Status = model.TaskStatusCompleted
	task.FailReason = ""
	return uc.taskRepo.UpdateTask(task)
}

func (uc *MatchUsecase) GetResult(id string) (*model.MatchTask, error) {
	return uc.taskRepo.FindTaskByID(id)
}

// CreateJob embeds the job content and stores it with its vector.
func (uc *MatchUsecase) CreateJob(ctx context.Context, title, content string) (*model.Job, error) {
	vector, err := uc.embedder.Embed(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job content: %w", err)
	}

	job := model.Job{
		Title:     title,
		Content:   content,
		Embedding: pgvector.NewVector(vector),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.jobRepo.CreateJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (uc *MatchUsecase) ListJobs(page, pageSize int) ([]model.Job, int64, error) {
	return uc.jobRepo.ListJobs(page, pageSize)
}

// SearchJobs embeds the resume and returns the nearest stored jobs.
func (uc *MatchUsecase) SearchJobs(ctx context.Context, resumeText string, topK int) ([]model.Job, error) {
	vector, err := uc.embedder.Embed(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume: %w", err)
	}
	return uc.jobRepo.SearchJobs(pgvector.NewVector(vector), topK)
}

func capList(list []string, n int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
