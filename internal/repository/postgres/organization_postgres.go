package postgres

import (
	"context"
	"database/sql"

	"gauzy/internal/model"
	"gauzy/internal/repository"
)

// OrganizationPostgres is a PostgreSQL implementation of repository.OrganizationRepository.
type OrganizationPostgres struct {
	db *sql.DB
}

// NewOrganizationPostgres creates a new OrganizationPostgres repository.
func NewOrganizationPostgres(db *sql.DB) *OrganizationPostgres {
	return &OrganizationPostgres{db: db}
}

var _ repository.OrganizationRepository = (*OrganizationPostgres)(nil)

const organizationColumns = `id, name, image_url, currency, value_date, default_value_date_type,
		is_active, default_alignment_type, time_zone, brand_color, date_format,
		official_name, start_week_on, tax_id, country, city, address, address2,
		postcode, region_code, number_format, created_at, updated_at, deleted_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrganization(s scanner) (*model.Organization, error) {
	var o model.Organization
	if err := s.Scan(
		&o.ID,
		&o.Name,
		&o.ImageURL,
		&o.Currency,
		&o.ValueDate,
		&o.DefaultValueDateType,
		&o.IsActive,
		&o.DefaultAlignmentType,
		&o.TimeZone,
		&o.BrandColor,
		&o.DateFormat,
		&o.OfficialName,
		&o.StartWeekOn,
		&o.TaxID,
		&o.Country,
		&o.City,
		&o.Address,
		&o.Address2,
		&o.Postcode,
		&o.RegionCode,
		&o.NumberFormat,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new organization row and returns the stored record.
func (r *OrganizationPostgres) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	const q = `
		INSERT INTO organization (id, name, image_url, currency, value_date, default_value_date_type,
			is_active, default_alignment_type, time_zone, brand_color, date_format,
			official_name, start_week_on, tax_id, country, city, address, address2,
			postcode, region_code, number_format, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING ` + organizationColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		org.ID,
		org.Name,
		org.ImageURL,
		org.Currency,
		org.ValueDate,
		org.DefaultValueDateType,
		org.IsActive,
		org.DefaultAlignmentType,
		org.TimeZone,
		org.BrandColor,
		org.DateFormat,
		org.OfficialName,
		org.StartWeekOn,
		org.TaxID,
		org.Country,
		org.City,
		org.Address,
		org.Address2,
		org.Postcode,
		org.RegionCode,
		org.NumberFormat,
		org.CreatedAt,
		org.UpdatedAt,
	)
	return scanOrganization(row)
}

// FindByID fetches a single live organization by its ID.
func (r *OrganizationPostgres) FindByID(ctx context.Context, id string) (*model.Organization, error) {
	q := `SELECT ` + organizationColumns + `
		FROM organization
		WHERE id = $1 AND deleted_at IS NULL`
	org, err := scanOrganization(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return org, nil
}

// List returns organizations using LIMIT/OFFSET pagination and a total count.
func (r *OrganizationPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Organization], error) {
	db := conn(ctx, r.db)

	const qCount = `SELECT COUNT(*) FROM organization WHERE deleted_at IS NULL`
	var total int
	if err := db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + organizationColumns + `
		FROM organization
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Organization]{
		Items: items,
		Total: total,
	}, nil
}

// Update writes every mutable column of a live organization.
func (r *OrganizationPostgres) Update(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	const q = `
		UPDATE organization SET
			name = $2, image_url = $3, currency = $4, value_date = $5,
			default_value_date_type = $6, is_active = $7, default_alignment_type = $8,
			time_zone = $9, brand_color = $10, date_format = $11, official_name = $12,
			start_week_on = $13, tax_id = $14, country = $15, city = $16, address = $17,
			address2 = $18, postcode = $19, region_code = $20, number_format = $21,
			updated_at = $22
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + organizationColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		org.ID,
		org.Name,
		org.ImageURL,
		org.Currency,
		org.ValueDate,
		org.DefaultValueDateType,
		org.IsActive,
		org.DefaultAlignmentType,
		org.TimeZone,
		org.BrandColor,
		org.DateFormat,
		org.OfficialName,
		org.StartWeekOn,
		org.TaxID,
		org.Country,
		org.City,
		org.Address,
		org.Address2,
		org.Postcode,
		org.RegionCode,
		org.NumberFormat,
		org.UpdatedAt,
	)
	out, err := scanOrganization(row)
	if err != nil {
		return nil, notFound(err)
	}
	return out, nil
}

// SoftDelete marks the organization deleted.
func (r *OrganizationPostgres) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE organization SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// UpdateImageURL stores the URL of a freshly uploaded logo.
func (r *OrganizationPostgres) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	const q = `UPDATE organization SET image_url = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, q, id, imageURL)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
