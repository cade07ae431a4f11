package repository

import (
	"context"
	"time"

	"gauzy/internal/model"
)

// TimeOffFilter narrows a time-off listing. OrganizationID is always set;
// EmployeeID further restricts to one employee's requests. Rows overlapping
// [From, To) are returned. An empty Status or model.TimeOffStatusAll
// disables status filtering.
type TimeOffFilter struct {
	OrganizationID  string
	EmployeeID      string
	From            time.Time
	To              time.Time
	Status          string
	IncludeHolidays bool
}

// TimeOffRepository persists time-off requests and holidays.
type TimeOffRepository interface {
	List(ctx context.Context, f TimeOffFilter) ([]model.TimeOffRequest, error)
	Create(ctx context.Context, req *model.TimeOffRequest) (*model.TimeOffRequest, error)
}
