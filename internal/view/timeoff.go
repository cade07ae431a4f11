package view

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"gauzy/internal/model"
	"gauzy/internal/service"
	"gauzy/internal/store"
)

// TimeOffLoader fetches the rows of the time-off table.
type TimeOffLoader interface {
	List(ctx context.Context, q service.TimeOffQuery) ([]model.TimeOffRequest, error)
}

// TimeOffUpdate is one reload of the time-off table.
type TimeOffUpdate struct {
	Date            time.Time              `json:"date"`
	EmployeeID      string                 `json:"employeeId,omitempty"`
	OrganizationID  string                 `json:"organizationId,omitempty"`
	Status          string                 `json:"status"`
	DisplayHolidays bool                   `json:"displayHolidays"`
	Rows            []model.TimeOffRequest `json:"rows"`
	Error           string                 `json:"error,omitempty"`
}

// TimeOffState is a snapshot of the view's selection.
type TimeOffState struct {
	SelectedDate           time.Time `json:"selectedDate"`
	SelectedEmployeeID     string    `json:"selectedEmployeeId,omitempty"`
	SelectedOrganizationID string    `json:"selectedOrganizationId,omitempty"`
	SelectedStatus         string    `json:"selectedStatus"`
	DisplayHolidays        bool      `json:"displayHolidays"`
}

// TimeOff keeps the time-off table in sync with a session's selection store.
// All loads run on the view's own goroutine.
type TimeOff struct {
	loader TimeOffLoader
	store  *store.Store
	log    logrus.FieldLogger

	mu    sync.Mutex
	state TimeOffState

	updates   chan TimeOffUpdate
	reload    chan struct{}
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewTimeOff starts a view bound to s. It runs until ctx is done or Close is called.
func NewTimeOff(ctx context.Context, loader TimeOffLoader, s *store.Store, log logrus.FieldLogger) *TimeOff {
	ctx, cancel := context.WithCancel(ctx)
	v := &TimeOff{
		loader: loader,
		store:  s,
		log:    log.WithField("component", "timeoff_view"),
		state: TimeOffState{
			SelectedDate:    s.Date(),
			SelectedStatus:  model.TimeOffStatusAll,
			DisplayHolidays: true,
		},
		updates: make(chan TimeOffUpdate, 1),
		reload:  make(chan struct{}, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	dates := s.SelectedDate.Subscribe(ctx)
	employees := s.SelectedEmployee.Subscribe(ctx)
	orgs := s.SelectedOrganization.Subscribe(ctx)
	go v.run(ctx, dates, employees, orgs)
	return v
}

func (v *TimeOff) run(ctx context.Context, dates <-chan time.Time, employees <-chan *model.Employee, orgs <-chan *model.Organization) {
	defer close(v.done)
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-dates:
			if !ok {
				return
			}
			v.onDate(ctx, d)
		case emp, ok := <-employees:
			if !ok {
				return
			}
			v.onEmployee(ctx, emp)
		case org, ok := <-orgs:
			if !ok {
				return
			}
			v.onOrganization(ctx, org)
		case <-v.reload:
			v.reloadCurrent(ctx)
		}
	}
}

func (v *TimeOff) onDate(ctx context.Context, d time.Time) {
	v.mu.Lock()
	v.state.SelectedDate = d
	v.mu.Unlock()
	v.reloadCurrent(ctx)
}

func (v *TimeOff) onEmployee(ctx context.Context, emp *model.Employee) {
	v.mu.Lock()
	if emp != nil {
		v.state.SelectedEmployeeID = emp.ID
		v.mu.Unlock()
		v.load(ctx, true)
		return
	}
	v.state.SelectedEmployeeID = ""
	hasOrg := v.state.SelectedOrganizationID != ""
	v.mu.Unlock()
	if hasOrg {
		v.load(ctx, false)
	}
}

func (v *TimeOff) onOrganization(ctx context.Context, org *model.Organization) {
	if org == nil {
		return
	}
	v.mu.Lock()
	v.state.SelectedOrganizationID = org.ID
	if emp := v.store.Employee(); emp != nil {
		v.state.SelectedEmployeeID = emp.ID
	}
	byEmployee := v.state.SelectedEmployeeID != ""
	v.mu.Unlock()
	v.load(ctx, byEmployee)
}

// reloadCurrent loads by employee when one is selected, else by organization.
// With neither selected there is nothing to show.
func (v *TimeOff) reloadCurrent(ctx context.Context) {
	v.mu.Lock()
	byEmployee := v.state.SelectedEmployeeID != ""
	hasOrg := v.state.SelectedOrganizationID != ""
	v.mu.Unlock()
	if byEmployee || hasOrg {
		v.load(ctx, byEmployee)
	}
}

func (v *TimeOff) load(ctx context.Context, byEmployee bool) {
	st := v.State()
	from, to := service.MonthWindow(st.SelectedDate)
	q := service.TimeOffQuery{
		From:            from,
		To:              to,
		Status:          st.SelectedStatus,
		IncludeHolidays: st.DisplayHolidays,
	}
	u := TimeOffUpdate{
		Date:            st.SelectedDate,
		Status:          st.SelectedStatus,
		DisplayHolidays: st.DisplayHolidays,
	}
	if byEmployee {
		q.EmployeeID = st.SelectedEmployeeID
		u.EmployeeID = st.SelectedEmployeeID
	} else {
		q.OrganizationID = st.SelectedOrganizationID
		u.OrganizationID = st.SelectedOrganizationID
	}

	rows, err := v.loader.List(ctx, q)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		v.log.WithError(err).WithFields(logrus.Fields{
			"employee_id":     q.EmployeeID,
			"organization_id": q.OrganizationID,
		}).Warn("time-off load failed")
		u.Error = err.Error()
	}
	u.Rows = rows
	v.publish(u)
}

// publish replaces any unread update with u. Only the run goroutine sends.
func (v *TimeOff) publish(u TimeOffUpdate) {
	select {
	case <-v.updates:
	default:
	}
	v.updates <- u
}

// Updates yields table reloads, latest first. It is closed by Close.
func (v *TimeOff) Updates() <-chan TimeOffUpdate {
	return v.updates
}

func (v *TimeOff) State() TimeOffState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Statuses lists the status filter values.
func (v *TimeOff) Statuses() []string {
	return service.TimeOffStatuses()
}

// SetStatus changes the status filter and reloads the table.
func (v *TimeOff) SetStatus(status string) error {
	if !slices.Contains(service.TimeOffStatuses(), status) {
		return service.ErrInvalidStatus
	}
	v.mu.Lock()
	v.state.SelectedStatus = status
	v.mu.Unlock()
	v.requestReload()
	return nil
}

// SetDisplayHolidays toggles holiday rows and reloads the table.
func (v *TimeOff) SetDisplayHolidays(show bool) {
	v.mu.Lock()
	v.state.DisplayHolidays = show
	v.mu.Unlock()
	v.requestReload()
}

func (v *TimeOff) requestReload() {
	select {
	case v.reload <- struct{}{}:
	default:
	}
}

// Close stops the view. No loads start and no updates are sent after it returns.
func (v *TimeOff) Close() {
	v.closeOnce.Do(func() {
		v.cancel()
		<-v.done
		close(v.updates)
	})
}
