package mocks

import (
	"context"
	"io"

	"gauzy/internal/model"
	"gauzy/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) Create(ctx context.Context, dto *model.OrganizationCreateDTO) (*model.Organization, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationService) Get(ctx context.Context, id string) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationService) List(ctx context.Context, limit, offset int) (*service.OrganizationListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrganizationListResult), args.Error(1)
}

func (m *MockOrganizationService) Update(ctx context.Context, id string, dto *model.OrganizationUpdateDTO) (*model.Organization, error) {
	args := m.Called(ctx, id, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrganizationService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (*model.Organization, error) {
	args := m.Called(ctx, id, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationService) Currencies() []service.CurrencyInfo {
	args := m.Called()
	return args.Get(0).([]service.CurrencyInfo)
}
