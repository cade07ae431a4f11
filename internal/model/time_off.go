package model

import "time"

// Time-off request statuses.
const (
	TimeOffStatusRequested = "REQUESTED"
	TimeOffStatusApproved  = "APPROVED"
	TimeOffStatusDenied    = "DENIED"
)

// TimeOffStatusAll disables status filtering.
const TimeOffStatusAll = "ALL"

// StatusTypesEnum lists the time-off statuses a request can hold.
var StatusTypesEnum = []string{TimeOffStatusRequested, TimeOffStatusApproved, TimeOffStatusDenied}

// TimeOffRequest is a single absence. Holidays apply to the whole
// organization and carry no employee.
type TimeOffRequest struct {
	Base
	OrganizationID string    `json:"organizationId"`
	EmployeeID     *string   `json:"employeeId,omitempty"`
	Description    string    `json:"description"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status" enums:"REQUESTED,APPROVED,DENIED"`
	IsHoliday      bool      `json:"isHoliday"`
}

// TimeOffRequestDTO is the "request days off" body.
type TimeOffRequestDTO struct {
	OrganizationID string    `json:"organizationId" validate:"required,uuid"`
	EmployeeID     string    `json:"employeeId" validate:"required,uuid"`
	Description    string    `json:"description" validate:"omitempty,max=500"`
	Start          time.Time `json:"start" validate:"required"`
	End            time.Time `json:"end" validate:"required,gtefield=Start"`
}

// HolidayDTO is the "add holidays" body.
type HolidayDTO struct {
	OrganizationID string    `json:"organizationId" validate:"required,uuid"`
	Description    string    `json:"description" validate:"required,notblank,max=500"`
	Start          time.Time `json:"start" validate:"required"`
	End            time.Time `json:"end" validate:"required,gtefield=Start"`
}
