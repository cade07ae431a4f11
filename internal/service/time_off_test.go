package service

import (
	"context"
	"testing"
	"time"

	"gauzy/internal/model"
	"gauzy/internal/repository"
	repoMocks "gauzy/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testOrgID = "6f1c1f7e-5b8e-4c0b-9a55-2f0d4b1c9e11"
	testEmpID = "0b7a4c8d-1e2f-4a3b-8c9d-0e1f2a3b4c5d"
)

func TestMonthWindow(t *testing.T) {
	sofia, err := time.LoadLocation("Europe/Sofia")
	require.NoError(t, err)

	from, to := MonthWindow(time.Date(2026, 12, 31, 23, 59, 0, 0, sofia))

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, sofia), from)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, sofia), to)
}

func TestTimeOffStatuses(t *testing.T) {
	assert.Equal(t, []string{"ALL", "REQUESTED", "APPROVED", "DENIED"}, TimeOffStatuses())
}

func TestTimeOffService_List(t *testing.T) {
	ctx := context.Background()
	from, to := MonthWindow(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	t.Run("by employee resolves organization", func(t *testing.T) {
		mRepo := new(repoMocks.MockTimeOffRepository)
		mEmp := new(repoMocks.MockEmployeeRepository)
		svc := NewTimeOffService(mRepo, mEmp, nil)

		mEmp.On("FindByID", ctx, "emp").Return(&model.Employee{OrganizationID: "org"}, nil)
		mRepo.On("List", ctx, repository.TimeOffFilter{
			OrganizationID:  "org",
			EmployeeID:      "emp",
			From:            from,
			To:              to,
			Status:          model.TimeOffStatusAll,
			IncludeHolidays: true,
		}).Return([]model.TimeOffRequest{{Description: "Vacation"}}, nil)

		rows, err := svc.List(ctx, TimeOffQuery{EmployeeID: "emp", From: from, To: to, IncludeHolidays: true})

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		mRepo.AssertExpectations(t)
	})

	t.Run("by organization with status", func(t *testing.T) {
		mRepo := new(repoMocks.MockTimeOffRepository)
		svc := NewTimeOffService(mRepo, nil, nil)

		mRepo.On("List", ctx, mock.MatchedBy(func(f repository.TimeOffFilter) bool {
			return f.OrganizationID == "org" && f.EmployeeID == "" && f.Status == model.TimeOffStatusDenied && !f.IncludeHolidays
		})).Return([]model.TimeOffRequest{}, nil)

		_, err := svc.List(ctx, TimeOffQuery{OrganizationID: "org", Status: model.TimeOffStatusDenied, From: from, To: to})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("defaults to current month", func(t *testing.T) {
		mRepo := new(repoMocks.MockTimeOffRepository)
		svc := NewTimeOffService(mRepo, nil, nil).(*timeOffService)
		svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

		mRepo.On("List", ctx, mock.MatchedBy(func(f repository.TimeOffFilter) bool {
			return f.From.Equal(from) && f.To.Equal(to)
		})).Return([]model.TimeOffRequest{}, nil)

		_, err := svc.List(ctx, TimeOffQuery{OrganizationID: "org"})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("errors", func(t *testing.T) {
		mEmp := new(repoMocks.MockEmployeeRepository)
		svc := NewTimeOffService(new(repoMocks.MockTimeOffRepository), mEmp, nil)
		mEmp.On("FindByID", ctx, "gone").Return(nil, repository.ErrNotFound)
		mEmp.On("FindByID", ctx, "other").Return(&model.Employee{OrganizationID: "org-b"}, nil)

		_, err := svc.List(ctx, TimeOffQuery{})
		assert.ErrorIs(t, err, ErrScopeRequired)

		_, err = svc.List(ctx, TimeOffQuery{OrganizationID: "org", Status: "MAYBE"})
		assert.ErrorIs(t, err, ErrInvalidStatus)

		_, err = svc.List(ctx, TimeOffQuery{EmployeeID: "gone"})
		assert.ErrorIs(t, err, ErrEmployeeNotFound)

		_, err = svc.List(ctx, TimeOffQuery{EmployeeID: "other", OrganizationID: "org-a"})
		assert.ErrorIs(t, err, ErrEmployeeOrganizationMismatch)
	})
}

func TestTimeOffService_Request(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockTimeOffRepository)
	mEmp := new(repoMocks.MockEmployeeRepository)
	svc := NewTimeOffService(mRepo, mEmp, nil)
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mEmp.On("FindByID", ctx, testEmpID).Return(&model.Employee{OrganizationID: testOrgID}, nil)
	mRepo.On("Create", ctx, mock.MatchedBy(func(r *model.TimeOffRequest) bool {
		return r.Status == model.TimeOffStatusRequested && !r.IsHoliday && *r.EmployeeID == testEmpID && r.OrganizationID == testOrgID
	})).Return(&model.TimeOffRequest{Status: model.TimeOffStatusRequested}, nil)

	out, err := svc.Request(ctx, &model.TimeOffRequestDTO{
		OrganizationID: testOrgID,
		EmployeeID:     testEmpID,
		Description:    "Vacation",
		Start:          start,
		End:            start.AddDate(0, 0, 4),
	})

	require.NoError(t, err)
	assert.Equal(t, model.TimeOffStatusRequested, out.Status)
	mRepo.AssertExpectations(t)
}

func TestTimeOffService_AddHoliday(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockTimeOffRepository)
	mOrg := new(repoMocks.MockOrganizationRepository)
	svc := NewTimeOffService(mRepo, nil, mOrg)
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	mOrg.On("FindByID", ctx, testOrgID).Return(&model.Organization{}, nil)
	mRepo.On("Create", ctx, mock.MatchedBy(func(r *model.TimeOffRequest) bool {
		return r.IsHoliday && r.EmployeeID == nil && r.Status == model.TimeOffStatusApproved
	})).Return(&model.TimeOffRequest{IsHoliday: true}, nil)

	out, err := svc.AddHoliday(ctx, &model.HolidayDTO{OrganizationID: testOrgID, Description: "Liberation Day", Start: day, End: day})

	require.NoError(t, err)
	assert.True(t, out.IsHoliday)

	_, err = svc.AddHoliday(ctx, &model.HolidayDTO{OrganizationID: testOrgID, Description: " ", Start: day, End: day})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "notblank", verr.Fields["description"])
}
