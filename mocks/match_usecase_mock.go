package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/rahuldohare007/resume-matcher/internal/dto"
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockMatchUsecase struct {
	mock.Mock
}

func (m *MockMatchUsecase) ProviderName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockMatchUsecase) ProviderDimension() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockMatchUsecase) CalculateSimilarity(ctx context.Context, resumeText, jobDescription string) (*dto.SimilarityResult, error) {
	args := m.Called(ctx, resumeText, jobDescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SimilarityResult), args.Error(1)
}

func (m *MockMatchUsecase) BatchSimilarity(ctx context.Context, resumes []string, jobDescription string) (*dto.BatchSimilarityData, error) {
	args := m.Called(ctx, resumes, jobDescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchSimilarityData), args.Error(1)
}

func (m *MockMatchUsecase) Submit(resumeText string, jobID uuid.UUID) (string, error) {
	args := m.Called(resumeText, jobID)
	return args.String(0), args.Error(1)
}

func (m *MockMatchUsecase) GetResult(id string) (*model.MatchTask, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MatchTask), args.Error(1)
}

func (m *MockMatchUsecase) CreateJob(ctx context.Context, title, content string) (*model.Job, error) {
	args := m.Called(ctx, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockMatchUsecase) ListJobs(page, pageSize int) ([]model.Job, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockMatchUsecase) SearchJobs(ctx context.Context, resumeText string, topK int) ([]model.Job, error) {
	args := m.Called(ctx, resumeText, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}
