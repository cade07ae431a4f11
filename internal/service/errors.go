package service

import (
	"errors"
	"fmt"

	"gauzy/internal/repository"
)

var (
	ErrIDRequired                   = errors.New("id is required")
	ErrReaderNil                    = errors.New("reader is nil")
	ErrStorageDisabled              = errors.New("object storage is not configured")
	ErrNotAnImage                   = errors.New("file must be an image")
	ErrOrganizationNotFound         = errors.New("organization not found")
	ErrUserOrganizationNotFound     = errors.New("user organization not found")
	ErrEmployeeNotFound             = errors.New("employee not found")
	ErrRoleNotFound                 = errors.New("role not found")
	ErrEmailTaken                   = errors.New("a user with this email already exists")
	ErrScopeRequired                = errors.New("employeeId or organizationId is required")
	ErrEmployeeOrganizationMismatch = errors.New("employee does not belong to the organization")
	ErrInvalidStatus                = errors.New("unknown time-off status")
)

// mapNotFound translates repository.ErrNotFound into the service-level sentinel.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
