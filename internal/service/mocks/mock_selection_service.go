package mocks

import (
	"context"

	"gauzy/internal/service"
	"gauzy/internal/store"

	"github.com/stretchr/testify/mock"
)

type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) Apply(ctx context.Context, s *store.Store, u *service.SelectionUpdate) (service.Selection, error) {
	args := m.Called(ctx, s, u)
	return args.Get(0).(service.Selection), args.Error(1)
}
