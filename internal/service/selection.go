package service

import (
	"context"
	"time"

	"gauzy/internal/model"
	"gauzy/internal/repository"
	"gauzy/internal/store"
)

// Selection is a snapshot of a session's selection store.
type Selection struct {
	UserID       string              `json:"userId,omitempty"`
	Organization *model.Organization `json:"organization,omitempty"`
	Employee     *model.Employee     `json:"employee,omitempty"`
	Date         time.Time           `json:"date"`
}

// SelectionUpdate changes the fields that are set. ClearEmployee drops the
// selected employee and wins over EmployeeID.
type SelectionUpdate struct {
	UserID         *string    `json:"userId" validate:"omitnil,uuid"`
	OrganizationID *string    `json:"organizationId" validate:"omitnil,uuid"`
	EmployeeID     *string    `json:"employeeId" validate:"omitnil,uuid"`
	ClearEmployee  bool       `json:"clearEmployee"`
	Date           *time.Time `json:"date"`
}

// SelectionOf reads the current selection of s.
func SelectionOf(s *store.Store) Selection {
	return Selection{
		UserID:       s.UserID(),
		Organization: s.Organization(),
		Employee:     s.Employee(),
		Date:         s.Date(),
	}
}

// SelectionService resolves selection changes against the database and
// publishes them to a session store.
type SelectionService interface {
	Apply(ctx context.Context, s *store.Store, u *SelectionUpdate) (Selection, error)
}

type selectionService struct {
	orgs      repository.OrganizationRepository
	employees repository.EmployeeRepository
}

func NewSelectionService(orgs repository.OrganizationRepository, employees repository.EmployeeRepository) SelectionService {
	return &selectionService{orgs: orgs, employees: employees}
}

// Apply validates u, loads the referenced rows and publishes them. Nothing is
// published when any lookup fails. A new organization that does not own the
// selected employee clears the employee.
func (s *selectionService) Apply(ctx context.Context, st *store.Store, u *SelectionUpdate) (Selection, error) {
	if err := model.Validate(u); err != nil {
		return Selection{}, err
	}

	org := st.Organization()
	orgChanged := false
	if u.OrganizationID != nil {
		found, err := s.orgs.FindByID(ctx, *u.OrganizationID)
		if err != nil {
			return Selection{}, mapNotFound(err, ErrOrganizationNotFound)
		}
		org, orgChanged = found, true
	}

	emp := st.Employee()
	empChanged := false
	switch {
	case u.ClearEmployee:
		emp, empChanged = nil, true
	case u.EmployeeID != nil:
		found, err := s.employees.FindByID(ctx, *u.EmployeeID)
		if err != nil {
			return Selection{}, mapNotFound(err, ErrEmployeeNotFound)
		}
		if org != nil && found.OrganizationID != org.ID {
			return Selection{}, ErrEmployeeOrganizationMismatch
		}
		emp, empChanged = found, true
	case orgChanged && emp != nil && emp.OrganizationID != org.ID:
		emp, empChanged = nil, true
	}

	if u.UserID != nil {
		st.SetUserID(*u.UserID)
	}
	if u.Date != nil {
		st.SelectedDate.Next(*u.Date)
	}
	// Employee goes first so organization subscribers see the final employee.
	if empChanged {
		st.SelectedEmployee.Next(emp)
	}
	if orgChanged {
		st.SelectedOrganization.Next(org)
	}
	return SelectionOf(st), nil
}
