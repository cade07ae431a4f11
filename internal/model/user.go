package model

import (
	"strings"
	"time"
)

// Role names.
const (
	RoleAdmin     = "ADMIN"
	RoleDataEntry = "DATA_ENTRY"
	RoleEmployee  = "EMPLOYEE"
	RoleCandidate = "CANDIDATE"
	RoleManager   = "MANAGER"
	RoleViewer    = "VIEWER"
)

// RolesEnum lists every role name the system knows about.
var RolesEnum = []string{RoleAdmin, RoleDataEntry, RoleEmployee, RoleCandidate, RoleManager, RoleViewer}

// Invitation types.
const (
	InvitationTypeUser     = "USER"
	InvitationTypeEmployee = "EMPLOYEE"
)

// InvitationTypeEnum lists the accepted invitationType values.
var InvitationTypeEnum = []string{InvitationTypeUser, InvitationTypeEmployee}

// Invite statuses.
const (
	InviteStatusInvited  = "INVITED"
	InviteStatusAccepted = "ACCEPTED"
	InviteStatusExpired  = "EXPIRED"
)

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name" enums:"ADMIN,DATA_ENTRY,EMPLOYEE,CANDIDATE,MANAGER,VIEWER"`
}

type User struct {
	Base
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	RoleID    *string `json:"roleId,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

// FullName joins first and last name with a single space, keeping the space
// even when one part is missing.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// DisplayName is the trimmed full name, or fallback when both parts are empty.
func (u User) DisplayName(fallback string) string {
	if name := strings.TrimSpace(u.FullName()); name != "" {
		return name
	}
	return fallback
}

// UserOrganization links a user to an organization.
// Removing a user from an organization deactivates the link instead of deleting it.
type UserOrganization struct {
	Base
	UserID         string `json:"userId"`
	OrganizationID string `json:"orgId"`
	IsDefault      bool   `json:"isDefault"`
	IsActive       bool   `json:"isActive"`
	User           *User  `json:"user,omitempty"`
}

type Employee struct {
	Base
	UserID         string `json:"userId"`
	OrganizationID string `json:"orgId"`
	User           *User  `json:"user,omitempty"`
}

type Invite struct {
	Base
	Email          string    `json:"email"`
	OrganizationID string    `json:"organizationId"`
	RoleID         *string   `json:"roleId,omitempty"`
	InvitedByID    *string   `json:"invitedById,omitempty"`
	InvitationType string    `json:"invitationType" enums:"USER,EMPLOYEE"`
	Status         string    `json:"status" enums:"INVITED,ACCEPTED,EXPIRED"`
	ExpireDate     time.Time `json:"expireDate"`
}

// UserCreateDTO is the body of the "add user" dialog.
type UserCreateDTO struct {
	FirstName string `json:"firstName" validate:"omitempty,max=255"`
	LastName  string `json:"lastName" validate:"omitempty,max=255"`
	Email     string `json:"email" validate:"required,email"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url,max=500"`
	RoleName  string `json:"roleName" validate:"omitempty,role_name"`
}

// InviteCreateDTO is the body of the "invite" dialog.
type InviteCreateDTO struct {
	Emails         []string `json:"emails" validate:"required,min=1,dive,email"`
	OrganizationID string   `json:"organizationId" validate:"required,uuid"`
	RoleName       string   `json:"roleName" validate:"omitempty,role_name"`
	InvitedByID    string   `json:"invitedById" validate:"omitempty,uuid"`
	InvitationType string   `json:"invitationType" validate:"omitempty,invitation_type"`
}
