package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEmbeddingService struct {
	mock.Mock
}

func (m *MockEmbeddingService) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEmbeddingService) Dimension() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockEmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}
