package mocks

import (
	"context"

	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockChatClient is a mock implementation of service.ChatClient
type MockChatClient struct {
	mock.Mock
}

var _ service.ChatClient = (*MockChatClient)(nil)

func (m *MockChatClient) Complete(ctx context.Context, req service.ChatRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockChatClient) Model() string {
	return "test-model"
}

// MockImageStore is a mock implementation of service.ImageStore
type MockImageStore struct {
	mock.Mock
}

var _ service.ImageStore = (*MockImageStore)(nil)

func (m *MockImageStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

// MockDraftStore is a mock implementation of service.DraftStore
type MockDraftStore struct {
	mock.Mock
}

var _ service.DraftStore = (*MockDraftStore)(nil)

func (m *MockDraftStore) Save(ctx context.Context, est *service.Estimate) (string, error) {
	args := m.Called(ctx, est)
	return args.String(0), args.Error(1)
}

func (m *MockDraftStore) Get(ctx context.Context, id string) (*service.Estimate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Estimate), args.Error(1)
}
