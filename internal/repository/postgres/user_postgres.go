package postgres

import (
	"context"
	"database/sql"

	"gauzy/internal/model"
	"gauzy/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, first_name, last_name, email, image_url, role_id, created_at, updated_at`

func scanUser(s scanner) (*model.User, error) {
	var u model.User
	if err := s.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.ImageURL,
		&u.RoleID,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user row.
func (r *UserPostgres) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const q = `
		INSERT INTO "user" (id, first_name, last_name, email, image_url, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns
	out, err := scanUser(conn(ctx, r.db).QueryRowContext(ctx, q,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.ImageURL,
		user.RoleID,
		user.CreatedAt,
		user.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}
	out.Role = user.Role
	return out, nil
}

// FindByEmail looks a live user up by email, case-insensitively.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM "user" WHERE lower(email) = lower($1) AND deleted_at IS NULL`
	u, err := scanUser(conn(ctx, r.db).QueryRowContext(ctx, q, email))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// RolePostgres is a PostgreSQL implementation of repository.RoleRepository.
type RolePostgres struct {
	db *sql.DB
}

func NewRolePostgres(db *sql.DB) *RolePostgres {
	return &RolePostgres{db: db}
}

var _ repository.RoleRepository = (*RolePostgres)(nil)

func (r *RolePostgres) FindByName(ctx context.Context, name string) (*model.Role, error) {
	const q = `SELECT id, name FROM role WHERE name = $1`
	var role model.Role
	if err := conn(ctx, r.db).QueryRowContext(ctx, q, name).Scan(&role.ID, &role.Name); err != nil {
		return nil, notFound(err)
	}
	return &role, nil
}

func (r *RolePostgres) List(ctx context.Context) ([]model.Role, error) {
	const q = `SELECT id, name FROM role ORDER BY name`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]model.Role, 0)
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// UserOrganizationPostgres is a PostgreSQL implementation of repository.UserOrganizationRepository.
type UserOrganizationPostgres struct {
	db *sql.DB
}

func NewUserOrganizationPostgres(db *sql.DB) *UserOrganizationPostgres {
	return &UserOrganizationPostgres{db: db}
}

var _ repository.UserOrganizationRepository = (*UserOrganizationPostgres)(nil)

// userOrganizationSelect loads the link with its user and the user's role.
const userOrganizationSelect = `
		SELECT uo.id, uo.user_id, uo.organization_id, uo.is_default, uo.is_active,
			uo.created_at, uo.updated_at,
			u.id, u.first_name, u.last_name, u.email, u.image_url, u.role_id,
			r.id, r.name
		FROM user_organization uo
		JOIN "user" u ON u.id = uo.user_id
		LEFT JOIN role r ON r.id = u.role_id
		WHERE uo.deleted_at IS NULL AND u.deleted_at IS NULL`

func scanUserOrganization(s scanner) (*model.UserOrganization, error) {
	var (
		uo               model.UserOrganization
		u                model.User
		roleID, roleName sql.NullString
	)
	if err := s.Scan(
		&uo.ID,
		&uo.UserID,
		&uo.OrganizationID,
		&uo.IsDefault,
		&uo.IsActive,
		&uo.CreatedAt,
		&uo.UpdatedAt,
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.ImageURL,
		&u.RoleID,
		&roleID,
		&roleName,
	); err != nil {
		return nil, err
	}
	if roleID.Valid {
		u.Role = &model.Role{ID: roleID.String, Name: roleName.String}
	}
	uo.User = &u
	return &uo, nil
}

// ListByOrganization returns the organization's links ordered by user name.
func (r *UserOrganizationPostgres) ListByOrganization(ctx context.Context, orgID string) ([]model.UserOrganization, error) {
	const q = userOrganizationSelect + `
			AND uo.organization_id = $1
		ORDER BY u.first_name, u.last_name, uo.id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserOrganization, 0)
	for rows.Next() {
		uo, err := scanUserOrganization(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *uo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *UserOrganizationPostgres) FindByID(ctx context.Context, id string) (*model.UserOrganization, error) {
	const q = userOrganizationSelect + `
			AND uo.id = $1`
	uo, err := scanUserOrganization(conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return uo, nil
}

func (r *UserOrganizationPostgres) SetActive(ctx context.Context, id string, active bool) error {
	const q = `UPDATE user_organization SET is_active = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, q, id, active)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Create inserts the link. The returned record carries uo.User unchanged.
func (r *UserOrganizationPostgres) Create(ctx context.Context, uo *model.UserOrganization) (*model.UserOrganization, error) {
	const q = `
		INSERT INTO user_organization (id, user_id, organization_id, is_default, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, organization_id, is_default, is_active, created_at, updated_at`
	var out model.UserOrganization
	if err := conn(ctx, r.db).QueryRowContext(ctx, q,
		uo.ID,
		uo.UserID,
		uo.OrganizationID,
		uo.IsDefault,
		uo.IsActive,
		uo.CreatedAt,
		uo.UpdatedAt,
	).Scan(
		&out.ID,
		&out.UserID,
		&out.OrganizationID,
		&out.IsDefault,
		&out.IsActive,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	out.User = uo.User
	return &out, nil
}

// EmployeePostgres is a PostgreSQL implementation of repository.EmployeeRepository.
type EmployeePostgres struct {
	db *sql.DB
}

func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{db: db}
}

var _ repository.EmployeeRepository = (*EmployeePostgres)(nil)

func (r *EmployeePostgres) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	const q = `
		SELECT id, user_id, organization_id, created_at, updated_at
		FROM employee
		WHERE id = $1 AND deleted_at IS NULL`
	var e model.Employee
	if err := conn(ctx, r.db).QueryRowContext(ctx, q, id).Scan(
		&e.ID,
		&e.UserID,
		&e.OrganizationID,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

// InvitePostgres is a PostgreSQL implementation of repository.InviteRepository.
type InvitePostgres struct {
	db *sql.DB
}

func NewInvitePostgres(db *sql.DB) *InvitePostgres {
	return &InvitePostgres{db: db}
}

var _ repository.InviteRepository = (*InvitePostgres)(nil)

const inviteColumns = `id, email, organization_id, role_id, invited_by_id, invitation_type, status, expire_date, created_at, updated_at`

func scanInvite(s scanner) (*model.Invite, error) {
	var inv model.Invite
	if err := s.Scan(
		&inv.ID,
		&inv.Email,
		&inv.OrganizationID,
		&inv.RoleID,
		&inv.InvitedByID,
		&inv.InvitationType,
		&inv.Status,
		&inv.ExpireDate,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitePostgres) Create(ctx context.Context, invite *model.Invite) (*model.Invite, error) {
	const q = `
		INSERT INTO invite (id, email, organization_id, role_id, invited_by_id, invitation_type, status, expire_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + inviteColumns
	return scanInvite(conn(ctx, r.db).QueryRowContext(ctx, q,
		invite.ID,
		invite.Email,
		invite.OrganizationID,
		invite.RoleID,
		invite.InvitedByID,
		invite.InvitationType,
		invite.Status,
		invite.ExpireDate,
		invite.CreatedAt,
		invite.UpdatedAt,
	))
}

// ListByOrganization returns the organization's invites, newest first.
func (r *InvitePostgres) ListByOrganization(ctx context.Context, orgID string) ([]model.Invite, error) {
	const q = `SELECT ` + inviteColumns + `
		FROM invite
		WHERE organization_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, id DESC`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Invite, 0)
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
