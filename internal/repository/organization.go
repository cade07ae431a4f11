package repository

import (
	"context"

	"gauzy/internal/model"
)

// OrganizationRepository defines data access for organizations using SQL queries only.
// Soft-deleted rows are invisible to every read.
type OrganizationRepository interface {
	// Create inserts a new organization. The caller provides ID and timestamps.
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)

	// FindByID returns ErrNotFound for missing or soft-deleted rows.
	FindByID(ctx context.Context, id string) (*model.Organization, error)

	// List returns a page of organizations, newest first, with the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Organization], error)

	// Update overwrites every mutable column and returns the stored row.
	Update(ctx context.Context, org *model.Organization) (*model.Organization, error)

	// SoftDelete sets deleted_at. ErrNotFound if already gone.
	SoftDelete(ctx context.Context, id string) error

	UpdateImageURL(ctx context.Context, id, imageURL string) error
}
