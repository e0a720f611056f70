package mocks

import (
	"github.com/pgvector/pgvector-go"
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) CreateJob(job *model.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobStore) FindJobByID(id string) (*model.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobStore) ListJobs(page, pageSize int) ([]model.Job, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobStore) SearchJobs(embedding pgvector.Vector, topK int) ([]model.Job, error) {
	args := m.Called(embedding, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}
