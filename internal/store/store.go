package store

import (
	"sync"
	"time"

	"gauzy/internal/model"
)

// Store is one session's selection state.
type Store struct {
	SelectedOrganization *Subject[*model.Organization]
	SelectedEmployee     *Subject[*model.Employee]
	SelectedDate         *Subject[time.Time]

	mu       sync.Mutex
	userID   string
	lastSeen time.Time
}

func New() *Store {
	return &Store{
		SelectedOrganization: NewSubject[*model.Organization](),
		SelectedEmployee:     NewSubject[*model.Employee](),
		SelectedDate:         NewSubject[time.Time](),
		lastSeen:             time.Now(),
	}
}

func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Store) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
}

// Organization returns the selected organization or nil.
func (s *Store) Organization() *model.Organization {
	org, _ := s.SelectedOrganization.Value()
	return org
}

// Employee returns the selected employee or nil.
func (s *Store) Employee() *model.Employee {
	emp, _ := s.SelectedEmployee.Value()
	return emp
}

// Date returns the selected date, defaulting to now.
func (s *Store) Date() time.Time {
	if d, ok := s.SelectedDate.Value(); ok {
		return d
	}
	return time.Now()
}

func (s *Store) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Store) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// active reports whether any view still listens to this store.
func (s *Store) active() bool {
	return s.SelectedOrganization.Subscribers() > 0 ||
		s.SelectedEmployee.Subscribers() > 0 ||
		s.SelectedDate.Subscribers() > 0
}
