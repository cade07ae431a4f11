package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gauzy/internal/model"
	"gauzy/internal/repository"
)

// TimeOffPostgres is a PostgreSQL implementation of repository.TimeOffRepository.
type TimeOffPostgres struct {
	db *sql.DB
}

func NewTimeOffPostgres(db *sql.DB) *TimeOffPostgres {
	return &TimeOffPostgres{db: db}
}

var _ repository.TimeOffRepository = (*TimeOffPostgres)(nil)

const timeOffColumns = `id, organization_id, employee_id, description, start_date, end_date, status, is_holiday, created_at, updated_at`

func scanTimeOff(s scanner) (*model.TimeOffRequest, error) {
	var t model.TimeOffRequest
	if err := s.Scan(
		&t.ID,
		&t.OrganizationID,
		&t.EmployeeID,
		&t.Description,
		&t.Start,
		&t.End,
		&t.Status,
		&t.IsHoliday,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

// buildTimeOffQuery renders the WHERE clause for f with positional arguments.
func buildTimeOffQuery(f repository.TimeOffFilter) (string, []any) {
	args := []any{f.OrganizationID, f.To, f.From}
	where := []string{
		"deleted_at IS NULL",
		"organization_id = $1",
		"start_date < $2",
		"end_date >= $3",
	}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch {
	case f.EmployeeID != "" && f.IncludeHolidays:
		where = append(where, "(employee_id = "+arg(f.EmployeeID)+" OR is_holiday)")
	case f.EmployeeID != "":
		where = append(where, "employee_id = "+arg(f.EmployeeID), "NOT is_holiday")
	case !f.IncludeHolidays:
		where = append(where, "NOT is_holiday")
	}
	if f.Status != "" && f.Status != model.TimeOffStatusAll {
		where = append(where, "status = "+arg(f.Status))
	}

	q := `SELECT ` + timeOffColumns + `
		FROM time_off_request
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY start_date, id`
	return q, args
}

// List returns the requests overlapping the filter window.
func (r *TimeOffPostgres) List(ctx context.Context, f repository.TimeOffFilter) ([]model.TimeOffRequest, error) {
	q, args := buildTimeOffQuery(f)
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TimeOffRequest, 0)
	for rows.Next() {
		t, err := scanTimeOff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TimeOffPostgres) Create(ctx context.Context, req *model.TimeOffRequest) (*model.TimeOffRequest, error) {
	const q = `
		INSERT INTO time_off_request (id, organization_id, employee_id, description, start_date, end_date, status, is_holiday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + timeOffColumns
	return scanTimeOff(conn(ctx, r.db).QueryRowContext(ctx, q,
		req.ID,
		req.OrganizationID,
		req.EmployeeID,
		req.Description,
		req.Start,
		req.End,
		req.Status,
		req.IsHoliday,
		req.CreatedAt,
		req.UpdatedAt,
	))
}
