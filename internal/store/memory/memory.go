package memory

import (
	"context"
	"sort"
	"sync"

	"lezioni/internal/core"
)

// Store is an in-memory record store with the same key semantics as the
// SQLite repository: name-keyed upsert for students, monotonic never-reused
// ids for payments. Used as the test double and as a volatile backend.
type Store struct {
	mu       sync.Mutex
	students map[string]core.Student
	payments []core.Payment
	nextID   int64
}

func New() *Store {
	return &Store{students: make(map[string]core.Student), nextID: 1}
}

// AddStudent overwrites any existing record with the same name.
func (s *Store) AddStudent(_ context.Context, st core.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[st.Name] = st
	return nil
}

func (s *Store) GetStudent(_ context.Context, name string) (core.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[name]
	if !ok {
		return core.Student{}, core.ErrStudentNotFound
	}
	return st, nil
}

// ListStudents returns the roster ordered by name, matching the key order
// the SQLite store iterates in.
func (s *Store) ListStudents(_ context.Context) ([]core.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteStudent is a no-op for absent names.
func (s *Store) DeleteStudent(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.students, name)
	return nil
}

// AddPayment assigns the next id. Ids are never reused, including after
// ClearPayments.
func (s *Store) AddPayment(_ context.Context, p core.Payment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.payments = append(s.payments, p)
	return p.ID, nil
}

func (s *Store) ListPayments(_ context.Context) ([]core.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Payment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

func (s *Store) DeletePayment(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.payments {
		if p.ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ClearPayments(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = nil
	return nil
}
