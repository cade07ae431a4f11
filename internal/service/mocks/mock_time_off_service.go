package mocks

import (
	"context"

	"gauzy/internal/model"
	"gauzy/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockTimeOffService struct {
	mock.Mock
}

func (m *MockTimeOffService) List(ctx context.Context, q service.TimeOffQuery) ([]model.TimeOffRequest, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeOffRequest), args.Error(1)
}

func (m *MockTimeOffService) Request(ctx context.Context, dto *model.TimeOffRequestDTO) (*model.TimeOffRequest, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TimeOffRequest), args.Error(1)
}

func (m *MockTimeOffService) AddHoliday(ctx context.Context, dto *model.HolidayDTO) (*model.TimeOffRequest, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TimeOffRequest), args.Error(1)
}
