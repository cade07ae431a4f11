package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the requested row does not exist or was soft-deleted.
var ErrNotFound = errors.New("record not found")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// TxRunner runs fn inside a single database transaction. Repository calls made
// with the ctx passed to fn join that transaction. A non-nil error from fn
// rolls everything back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
