package mocks

import (
	"context"
	"io"

	"gauzy/internal/model"
	"gauzy/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context, orgID, lang, search string) (*service.UsersPage, error) {
	args := m.Called(ctx, orgID, lang, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UsersPage), args.Error(1)
}

func (m *MockUserService) AddUser(ctx context.Context, orgID, lang string, dto *model.UserCreateDTO) (*service.UserMutationResult, error) {
	args := m.Called(ctx, orgID, lang, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserMutationResult), args.Error(1)
}

func (m *MockUserService) InviteUsers(ctx context.Context, lang string, dto *model.InviteCreateDTO) (*service.InviteResult, error) {
	args := m.Called(ctx, lang, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InviteResult), args.Error(1)
}

func (m *MockUserService) ListInvites(ctx context.Context, orgID string) ([]model.Invite, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invite), args.Error(1)
}

func (m *MockUserService) SetUserInactive(ctx context.Context, userOrgID, lang string) (*service.UserMutationResult, error) {
	args := m.Called(ctx, userOrgID, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserMutationResult), args.Error(1)
}

func (m *MockUserService) ExportUsers(ctx context.Context, orgID, lang string, w io.Writer) error {
	args := m.Called(ctx, orgID, lang, w)
	return args.Error(0)
}

func (m *MockUserService) TableSettings(lang string) service.TableSettings {
	args := m.Called(lang)
	return args.Get(0).(service.TableSettings)
}
