package mocks

import (
	"github.com/rahuldohare007/resume-matcher/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) CreateTask(task *model.MatchTask) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockTaskStore) UpdateTask(task *model.MatchTask) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockTaskStore) FindTaskByID(id string) (*model.MatchTask, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MatchTask), args.Error(1)
}
