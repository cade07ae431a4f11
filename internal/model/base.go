package model

import "time"

// Base carries the identity and lifecycle columns shared by every entity.
// DeletedAt is set on soft delete; soft-deleted rows are invisible to reads.
type Base struct {
	ID        string     `json:"id" example:"6f1c1f7e-5b8e-4c0b-9a55-2f0d4b1c9e11"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" swaggerignore:"true"`
}

// IsDeleted reports whether the record was soft-deleted.
func (b Base) IsDeleted() bool {
	return b.DeletedAt != nil
}
