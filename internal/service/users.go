package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/xuri/excelize/v2"

	"gauzy/internal/model"
	"gauzy/internal/repository"
)

// UsersPerPage is the users grid page size.
const UsersPerPage = 8

// InviteTTL is how long an invitation stays valid.
const InviteTTL = 7 * 24 * time.Hour

// Translator resolves message keys; missing keys come back unchanged.
type Translator interface {
	T(lang, key string, data map[string]any) string
}

// UserViewModel is one row of the users grid. ID is the user-organization link.
type UserViewModel struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
	ImageURL string `json:"imageUrl"`
	RoleName string `json:"roleName"`
}

type TableColumn struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type TablePager struct {
	Display bool `json:"display"`
	PerPage int  `json:"perPage"`
}

// TableSettings configures the users grid.
type TableSettings struct {
	Actions bool                   `json:"actions"`
	Columns map[string]TableColumn `json:"columns"`
	Order   []string               `json:"columnOrder"`
	Pager   TablePager             `json:"pager"`
}

// UsersPage is everything the users screen renders.
type UsersPage struct {
	OrganizationName string          `json:"organizationName"`
	Users            []UserViewModel `json:"users"`
	Settings         TableSettings   `json:"settings"`
}

// UserMutationResult carries the affected row and the toast shown for it.
type UserMutationResult struct {
	User    UserViewModel `json:"user"`
	Message string        `json:"message"`
}

type InviteResult struct {
	Items   []model.Invite `json:"data"`
	Message string         `json:"message"`
}

// UserService defines the users administration use cases.
type UserService interface {
	// ListUsers returns the active, non-employee users of the organization.
	// A non-empty search keeps rows whose name or email fuzzily match it.
	ListUsers(ctx context.Context, orgID, lang, search string) (*UsersPage, error)
	// AddUser creates the user and links it to the organization in one transaction.
	AddUser(ctx context.Context, orgID, lang string, dto *model.UserCreateDTO) (*UserMutationResult, error)
	InviteUsers(ctx context.Context, lang string, dto *model.InviteCreateDTO) (*InviteResult, error)
	ListInvites(ctx context.Context, orgID string) ([]model.Invite, error)
	// SetUserInactive deactivates a user-organization link.
	SetUserInactive(ctx context.Context, userOrgID, lang string) (*UserMutationResult, error)
	// ExportUsers writes the grid as an XLSX workbook.
	ExportUsers(ctx context.Context, orgID, lang string, w io.Writer) error
	TableSettings(lang string) TableSettings
}

// UserRepositories groups the stores the user service needs.
type UserRepositories struct {
	Organizations     repository.OrganizationRepository
	Users             repository.UserRepository
	Roles             repository.RoleRepository
	UserOrganizations repository.UserOrganizationRepository
	Invites           repository.InviteRepository
	Tx                repository.TxRunner
}

type userService struct {
	repos UserRepositories
	tr    Translator
	now   func() time.Time
}

func NewUserService(repos UserRepositories, tr Translator) UserService {
	return &userService{repos: repos, tr: tr, now: func() time.Time { return time.Now().UTC() }}
}

// FilterUsers keeps active links whose user has no role or a role other than
// EMPLOYEE and projects them to rows. roleTitle translates a role name.
func FilterUsers(items []model.UserOrganization, roleTitle func(name string) string) []UserViewModel {
	out := make([]UserViewModel, 0, len(items))
	for _, uo := range items {
		if !uo.IsActive || uo.User == nil {
			continue
		}
		if uo.User.Role != nil && uo.User.Role.Name == model.RoleEmployee {
			continue
		}
		out = append(out, toViewModel(uo, roleTitle))
	}
	return out
}

func toViewModel(uo model.UserOrganization, roleTitle func(string) string) UserViewModel {
	vm := UserViewModel{ID: uo.ID, IsActive: uo.IsActive}
	if u := uo.User; u != nil {
		vm.FullName = u.FullName()
		vm.Email = u.Email
		vm.ImageURL = u.ImageURL
		if u.Role != nil {
			vm.RoleName = roleTitle(u.Role.Name)
		}
	}
	return vm
}

func searchUsers(rows []UserViewModel, search string) []UserViewModel {
	search = strings.TrimSpace(search)
	if search == "" {
		return rows
	}
	out := make([]UserViewModel, 0, len(rows))
	for _, r := range rows {
		if fuzzy.MatchNormalizedFold(search, r.FullName) || fuzzy.MatchNormalizedFold(search, r.Email) {
			out = append(out, r)
		}
	}
	return out
}

func (s *userService) roleTitle(lang string) func(string) string {
	return func(name string) string {
		return s.tr.T(lang, "USERS_PAGE.ROLE."+name, nil)
	}
}

func (s *userService) TableSettings(lang string) TableSettings {
	return TableSettings{
		Actions: false,
		Columns: map[string]TableColumn{
			"fullName": {Title: s.tr.T(lang, "SM_TABLE.FULL_NAME", nil), Type: "custom"},
			"email":    {Title: s.tr.T(lang, "SM_TABLE.EMAIL", nil), Type: "email"},
			"roleName": {Title: s.tr.T(lang, "SM_TABLE.ROLE", nil), Type: "text"},
		},
		Order: []string{"fullName", "email", "roleName"},
		Pager: TablePager{Display: true, PerPage: UsersPerPage},
	}
}

func (s *userService) ListUsers(ctx context.Context, orgID, lang, search string) (*UsersPage, error) {
	if orgID == "" {
		return nil, ErrIDRequired
	}
	org, err := s.repos.Organizations.FindByID(ctx, orgID)
	if err != nil {
		return nil, mapNotFound(err, ErrOrganizationNotFound)
	}
	items, err := s.repos.UserOrganizations.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, wrap("list organization users", err)
	}

	return &UsersPage{
		OrganizationName: org.Name,
		Users:            searchUsers(FilterUsers(items, s.roleTitle(lang)), search),
		Settings:         s.TableSettings(lang),
	}, nil
}

func (s *userService) AddUser(ctx context.Context, orgID, lang string, dto *model.UserCreateDTO) (*UserMutationResult, error) {
	if orgID == "" {
		return nil, ErrIDRequired
	}
	if err := model.Validate(dto); err != nil {
		return nil, err
	}

	var (
		org     *model.Organization
		created *model.User
		link    *model.UserOrganization
	)
	err := s.repos.Tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		org, err = s.repos.Organizations.FindByID(ctx, orgID)
		if err != nil {
			return mapNotFound(err, ErrOrganizationNotFound)
		}

		if _, err := s.repos.Users.FindByEmail(ctx, dto.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return wrap("find user", err)
		}

		now := s.now()
		user := &model.User{
			Base:      model.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Email:     dto.Email,
			ImageURL:  dto.ImageURL,
		}
		if dto.RoleName != "" {
			role, err := s.repos.Roles.FindByName(ctx, dto.RoleName)
			if err != nil {
				return mapNotFound(err, ErrRoleNotFound)
			}
			user.RoleID = &role.ID
			user.Role = role
		}
		created, err = s.repos.Users.Create(ctx, user)
		if err != nil {
			return wrap("create user", err)
		}

		link, err = s.repos.UserOrganizations.Create(ctx, &model.UserOrganization{
			Base:           model.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
			UserID:         created.ID,
			OrganizationID: orgID,
			IsActive:       true,
			User:           created,
		})
		if err != nil {
			return wrap("link user to organization", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	link.User = created
	name := created.DisplayName(s.tr.T(lang, "USERS_PAGE.DEFAULT_NAME", nil))
	return &UserMutationResult{
		User: toViewModel(*link, s.roleTitle(lang)),
		Message: s.tr.T(lang, "TOASTR.MESSAGE.USER_ADDED", map[string]any{
			"Name":         name,
			"Organization": org.Name,
		}),
	}, nil
}

func (s *userService) InviteUsers(ctx context.Context, lang string, dto *model.InviteCreateDTO) (*InviteResult, error) {
	if err := model.Validate(dto); err != nil {
		return nil, err
	}
	invitationType := dto.InvitationType
	if invitationType == "" {
		invitationType = model.InvitationTypeUser
	}

	invites := make([]model.Invite, 0, len(dto.Emails))
	err := s.repos.Tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.repos.Organizations.FindByID(ctx, dto.OrganizationID); err != nil {
			return mapNotFound(err, ErrOrganizationNotFound)
		}
		var roleID *string
		if dto.RoleName != "" {
			role, err := s.repos.Roles.FindByName(ctx, dto.RoleName)
			if err != nil {
				return mapNotFound(err, ErrRoleNotFound)
			}
			roleID = &role.ID
		}
		var invitedBy *string
		if dto.InvitedByID != "" {
			invitedBy = &dto.InvitedByID
		}

		now := s.now()
		for _, email := range dto.Emails {
			inv, err := s.repos.Invites.Create(ctx, &model.Invite{
				Base:           model.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
				Email:          email,
				OrganizationID: dto.OrganizationID,
				RoleID:         roleID,
				InvitedByID:    invitedBy,
				InvitationType: invitationType,
				Status:         model.InviteStatusInvited,
				ExpireDate:     now.Add(InviteTTL),
			})
			if err != nil {
				return wrap(fmt.Sprintf("invite %s", email), err)
			}
			invites = append(invites, *inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &InviteResult{
		Items:   invites,
		Message: s.tr.T(lang, "TOASTR.MESSAGE.INVITES_SENT", map[string]any{"Count": len(invites)}),
	}, nil
}

func (s *userService) ListInvites(ctx context.Context, orgID string) ([]model.Invite, error) {
	if orgID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.repos.Organizations.FindByID(ctx, orgID); err != nil {
		return nil, mapNotFound(err, ErrOrganizationNotFound)
	}
	return s.repos.Invites.ListByOrganization(ctx, orgID)
}

func (s *userService) SetUserInactive(ctx context.Context, userOrgID, lang string) (*UserMutationResult, error) {
	if userOrgID == "" {
		return nil, ErrIDRequired
	}
	link, err := s.repos.UserOrganizations.FindByID(ctx, userOrgID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserOrganizationNotFound)
	}
	if err := s.repos.UserOrganizations.SetActive(ctx, userOrgID, false); err != nil {
		return nil, mapNotFound(err, ErrUserOrganizationNotFound)
	}
	link.IsActive = false

	name := s.tr.T(lang, "USERS_PAGE.DEFAULT_NAME", nil)
	if link.User != nil {
		name = link.User.DisplayName(name)
	}
	return &UserMutationResult{
		User:    toViewModel(*link, s.roleTitle(lang)),
		Message: s.tr.T(lang, "TOASTR.MESSAGE.USER_SET_INACTIVE", map[string]any{"Name": name}),
	}, nil
}

func (s *userService) ExportUsers(ctx context.Context, orgID, lang string, w io.Writer) error {
	page, err := s.ListUsers(ctx, orgID, lang, "")
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := s.tr.T(lang, "USERS_PAGE.SHEET_NAME", nil)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return wrap("export users", err)
	}

	header := make([]any, 0, len(page.Settings.Order))
	for _, col := range page.Settings.Order {
		header = append(header, page.Settings.Columns[col].Title)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return wrap("export users", err)
	}
	for i, u := range page.Users {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return wrap("export users", err)
		}
		row := []any{u.FullName, u.Email, u.RoleName}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return wrap("export users", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return wrap("export users", err)
	}
	return nil
}
