package repository

import (
	"context"

	"gauzy/internal/model"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// RoleRepository reads the seeded role table.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
}

// UserOrganizationRepository persists user-to-organization links.
// Reads always load the user and the user's role.
type UserOrganizationRepository interface {
	// ListByOrganization returns every link of the organization, active or not.
	ListByOrganization(ctx context.Context, orgID string) ([]model.UserOrganization, error)

	FindByID(ctx context.Context, id string) (*model.UserOrganization, error)

	// SetActive flips is_active. ErrNotFound if the link does not exist.
	SetActive(ctx context.Context, id string, active bool) error

	Create(ctx context.Context, uo *model.UserOrganization) (*model.UserOrganization, error)
}

// EmployeeRepository reads employees.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id string) (*model.Employee, error)
}

// InviteRepository persists invitations.
type InviteRepository interface {
	Create(ctx context.Context, invite *model.Invite) (*model.Invite, error)
	ListByOrganization(ctx context.Context, orgID string) ([]model.Invite, error)
}
