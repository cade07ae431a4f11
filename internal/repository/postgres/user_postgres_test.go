package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gauzy/internal/model"
	"gauzy/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userOrganizationRowColumns = []string{
	"id", "user_id", "organization_id", "is_default", "is_active", "created_at", "updated_at",
	"id", "first_name", "last_name", "email", "image_url", "role_id",
	"id", "name",
}

func TestUserOrganizationPostgres_ListByOrganization(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserOrganizationPostgres(db)
	now := time.Now()

	rows := sqlmock.NewRows(userOrganizationRowColumns).
		AddRow("uo-1", "u-1", "org-1", true, true, now, now, "u-1", "Ada", "Lovelace", "ada@example.com", "", "r-1", "r-1", "ADMIN").
		AddRow("uo-2", "u-2", "org-1", false, false, now, now, "u-2", "Bob", "", "bob@example.com", "", nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM user_organization uo JOIN \"user\" u ON u.id = uo.user_id LEFT JOIN role r (.+) AND uo.organization_id = \\$1").
		WithArgs("org-1").
		WillReturnRows(rows)

	items, err := repo.ListByOrganization(context.Background(), "org-1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].User.Role)
	assert.Equal(t, model.RoleAdmin, items[0].User.Role.Name)
	assert.Equal(t, "Ada", items[0].User.FirstName)
	assert.Nil(t, items[1].User.Role)
	assert.False(t, items[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserOrganizationPostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserOrganizationPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM user_organization uo (.+) AND uo.id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserOrganizationPostgres_SetActive(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserOrganizationPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE user_organization SET is_active = \\$2").
		WithArgs("uo-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_organization SET is_active = \\$2").
		WithArgs("missing", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetActive(ctx, "uo-1", false))
	assert.ErrorIs(t, repo.SetActive(ctx, "missing", false), repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserOrganizationPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserOrganizationPostgres(db)
	now := time.Now()
	user := &model.User{Base: model.Base{ID: "u-1"}, FirstName: "Ada"}
	uo := &model.UserOrganization{
		Base:           model.Base{ID: "uo-1", CreatedAt: now, UpdatedAt: now},
		UserID:         "u-1",
		OrganizationID: "org-1",
		IsActive:       true,
		User:           user,
	}

	mock.ExpectQuery("INSERT INTO user_organization").
		WithArgs("uo-1", "u-1", "org-1", false, true, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "organization_id", "is_default", "is_active", "created_at", "updated_at"}).
			AddRow("uo-1", "u-1", "org-1", false, true, now, now))

	out, err := repo.Create(context.Background(), uo)

	require.NoError(t, err)
	assert.Same(t, user, out.User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_CreateAndFindByEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()
	now := time.Now()
	roleID := "r-1"
	user := &model.User{
		Base:      model.Base{ID: "u-1", CreatedAt: now, UpdatedAt: now},
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		RoleID:    &roleID,
		Role:      &model.Role{ID: roleID, Name: model.RoleViewer},
	}
	cols := []string{"id", "first_name", "last_name", "email", "image_url", "role_id", "created_at", "updated_at"}

	mock.ExpectQuery("INSERT INTO \"user\"").
		WithArgs(user.ID, user.FirstName, user.LastName, user.Email, user.ImageURL, user.RoleID, now, now).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("u-1", "Ada", "Lovelace", "ada@example.com", "", "r-1", now, now))

	created, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, model.RoleViewer, created.Role.Name)
	assert.Equal(t, "r-1", *created.RoleID)

	mock.ExpectQuery("SELECT (.+) FROM \"user\" WHERE lower\\(email\\) = lower\\(\\$1\\)").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRolePostgres(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRolePostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name FROM role WHERE name = \\$1").
		WithArgs(model.RoleEmployee).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("r-3", model.RoleEmployee))
	mock.ExpectQuery("SELECT id, name FROM role ORDER BY name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("r-1", model.RoleAdmin).AddRow("r-3", model.RoleEmployee))

	role, err := repo.FindByName(ctx, model.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "r-3", role.ID)

	roles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeePostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEmployeePostgres(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM employee WHERE id = \\$1").
		WithArgs("emp-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "organization_id", "created_at", "updated_at"}).
			AddRow("emp-1", "u-1", "org-1", now, now))

	emp, err := repo.FindByID(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "org-1", emp.OrganizationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitePostgres(t *testing.T) {
	db, mock := newMock(t)
	repo := NewInvitePostgres(db)
	ctx := context.Background()
	now := time.Now()
	cols := []string{"id", "email", "organization_id", "role_id", "invited_by_id", "invitation_type", "status", "expire_date", "created_at", "updated_at"}
	inv := &model.Invite{
		Base:           model.Base{ID: "inv-1", CreatedAt: now, UpdatedAt: now},
		Email:          "new@example.com",
		OrganizationID: "org-1",
		InvitationType: model.InvitationTypeUser,
		Status:         model.InviteStatusInvited,
		ExpireDate:     now.Add(24 * time.Hour),
	}

	mock.ExpectQuery("INSERT INTO invite").
		WithArgs(inv.ID, inv.Email, inv.OrganizationID, inv.RoleID, inv.InvitedByID, inv.InvitationType, inv.Status, inv.ExpireDate, now, now).
		WillReturnRows(sqlmock.NewRows(cols).AddRow("inv-1", inv.Email, "org-1", nil, nil, "USER", "INVITED", inv.ExpireDate, now, now))
	mock.ExpectQuery("SELECT (.+) FROM invite WHERE organization_id = \\$1").
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("inv-1", inv.Email, "org-1", nil, nil, "USER", "INVITED", inv.ExpireDate, now, now))

	created, err := repo.Create(ctx, inv)
	require.NoError(t, err)
	assert.Nil(t, created.RoleID)

	list, err := repo.ListByOrganization(ctx, "org-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
