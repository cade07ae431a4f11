package mocks

import (
	"context"

	"gauzy/internal/model"
	"gauzy/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockTimeOffRepository struct {
	mock.Mock
}

func (m *MockTimeOffRepository) List(ctx context.Context, f repository.TimeOffFilter) ([]model.TimeOffRequest, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeOffRequest), args.Error(1)
}

func (m *MockTimeOffRepository) Create(ctx context.Context, req *model.TimeOffRequest) (*model.TimeOffRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TimeOffRequest), args.Error(1)
}

// MockTxRunner runs fn inline without a database.
type MockTxRunner struct {
	mock.Mock
}

func (m *MockTxRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
