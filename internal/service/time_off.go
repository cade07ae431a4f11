package service

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"gauzy/internal/model"
	"gauzy/internal/repository"
)

// TimeOffQuery selects the rows of the time-off table. Either EmployeeID or
// OrganizationID must be set. Zero From/To default to the current month.
type TimeOffQuery struct {
	EmployeeID      string
	OrganizationID  string
	From            time.Time
	To              time.Time
	Status          string
	IncludeHolidays bool
}

// MonthWindow returns [first day of date's month, first day of the next month)
// in date's location.
func MonthWindow(date time.Time) (from, to time.Time) {
	y, m, _ := date.Date()
	from = time.Date(y, m, 1, 0, 0, 0, 0, date.Location())
	return from, from.AddDate(0, 1, 0)
}

// TimeOffStatuses lists the status filter values, ALL first.
func TimeOffStatuses() []string {
	return append([]string{model.TimeOffStatusAll}, model.StatusTypesEnum...)
}

// TimeOffService defines the time-off use cases.
type TimeOffService interface {
	List(ctx context.Context, q TimeOffQuery) ([]model.TimeOffRequest, error)
	// Request records a REQUESTED absence for an employee.
	Request(ctx context.Context, dto *model.TimeOffRequestDTO) (*model.TimeOffRequest, error)
	// AddHoliday records an approved organization-wide holiday.
	AddHoliday(ctx context.Context, dto *model.HolidayDTO) (*model.TimeOffRequest, error)
}

type timeOffService struct {
	repo      repository.TimeOffRepository
	employees repository.EmployeeRepository
	orgs      repository.OrganizationRepository
	now       func() time.Time
}

func NewTimeOffService(repo repository.TimeOffRepository, employees repository.EmployeeRepository, orgs repository.OrganizationRepository) TimeOffService {
	return &timeOffService{repo: repo, employees: employees, orgs: orgs, now: func() time.Time { return time.Now().UTC() }}
}

// employeeOrganization resolves the employee and checks it against orgID when set.
func (s *timeOffService) employeeOrganization(ctx context.Context, employeeID, orgID string) (string, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return "", mapNotFound(err, ErrEmployeeNotFound)
	}
	if orgID != "" && orgID != emp.OrganizationID {
		return "", ErrEmployeeOrganizationMismatch
	}
	return emp.OrganizationID, nil
}

func (s *timeOffService) List(ctx context.Context, q TimeOffQuery) ([]model.TimeOffRequest, error) {
	status := q.Status
	if status == "" {
		status = model.TimeOffStatusAll
	}
	if !slices.Contains(TimeOffStatuses(), status) {
		return nil, ErrInvalidStatus
	}

	f := repository.TimeOffFilter{
		OrganizationID:  q.OrganizationID,
		EmployeeID:      q.EmployeeID,
		From:            q.From,
		To:              q.To,
		Status:          status,
		IncludeHolidays: q.IncludeHolidays,
	}
	switch {
	case q.EmployeeID != "":
		orgID, err := s.employeeOrganization(ctx, q.EmployeeID, q.OrganizationID)
		if err != nil {
			return nil, err
		}
		f.OrganizationID = orgID
	case q.OrganizationID == "":
		return nil, ErrScopeRequired
	}
	if f.From.IsZero() || f.To.IsZero() {
		f.From, f.To = MonthWindow(s.now())
	}

	rows, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, wrap("list time off", err)
	}
	return rows, nil
}

func (s *timeOffService) Request(ctx context.Context, dto *model.TimeOffRequestDTO) (*model.TimeOffRequest, error) {
	if err := model.Validate(dto); err != nil {
		return nil, err
	}
	orgID, err := s.employeeOrganization(ctx, dto.EmployeeID, dto.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	employeeID := dto.EmployeeID
	stored, err := s.repo.Create(ctx, &model.TimeOffRequest{
		Base:           model.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		OrganizationID: orgID,
		EmployeeID:     &employeeID,
		Description:    dto.Description,
		Start:          dto.Start,
		End:            dto.End,
		Status:         model.TimeOffStatusRequested,
	})
	if err != nil {
		return nil, wrap("create time off", err)
	}
	return stored, nil
}

func (s *timeOffService) AddHoliday(ctx context.Context, dto *model.HolidayDTO) (*model.TimeOffRequest, error) {
	if err := model.Validate(dto); err != nil {
		return nil, err
	}
	if _, err := s.orgs.FindByID(ctx, dto.OrganizationID); err != nil {
		return nil, mapNotFound(err, ErrOrganizationNotFound)
	}

	now := s.now()
	stored, err := s.repo.Create(ctx, &model.TimeOffRequest{
		Base:           model.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		OrganizationID: dto.OrganizationID,
		Description:    dto.Description,
		Start:          dto.Start,
		End:            dto.End,
		Status:         model.TimeOffStatusApproved,
		IsHoliday:      true,
	})
	if err != nil {
		return nil, wrap("create holiday", err)
	}
	return stored, nil
}
