package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lezioni/internal/core"
	"lezioni/internal/events"
	"lezioni/internal/store"
)

// ChangePublisher announces committed mutations to external consumers.
// A nil publisher disables notifications.
type ChangePublisher interface {
	PublishChange(ctx context.Context, collection, op, key string) error
}

// RosterService mediates the student lifecycle and exposes the current
// roster to the payment-entry surface.
type RosterService struct {
	store  store.RosterStore
	events ChangePublisher
}

func NewRosterService(rs store.RosterStore, events ChangePublisher) *RosterService {
	return &RosterService{store: rs, events: events}
}

// AddStudent validates the raw form input and writes through to the store.
// Validation failures come back as core sentinel errors for inline form
// feedback; the store is not touched. An existing name is silently replaced.
func (s *RosterService) AddStudent(ctx context.Context, name, price string) (core.Student, error) {
	cents, err := core.ParseDecimalToCents(price)
	if err != nil {
		return core.Student{}, err
	}
	st := core.Student{Name: strings.TrimSpace(name), Price: core.Money{Cents: cents}}
	if err := st.Validate(); err != nil {
		return core.Student{}, err
	}

	if err := s.store.AddStudent(ctx, st); err != nil {
		return core.Student{}, fmt.Errorf("add student: %w", err)
	}

	s.publish(ctx, events.CollectionStudents, events.OpAdd, st.Name)
	return st, nil
}

// RemoveStudent deletes the roster entry. The student's historical payments
// are intentionally left in place, orphaned by name.
func (s *RosterService) RemoveStudent(ctx context.Context, name string) error {
	if err := s.store.DeleteStudent(ctx, name); err != nil {
		slog.ErrorContext(ctx, "Failed to delete student",
			"student_name", name,
			"error", err)
		return fmt.Errorf("remove student: %w", err)
	}

	s.publish(ctx, events.CollectionStudents, events.OpDelete, name)
	return nil
}

// ListForSelection returns the full roster for the payment pick-list.
// Every call is a fresh fetch; the service holds no copy.
func (s *RosterService) ListForSelection(ctx context.Context) ([]core.Student, error) {
	roster, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return roster, nil
}

func (s *RosterService) publish(ctx context.Context, collection, op, key string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishChange(ctx, collection, op, key); err != nil {
		// The mutation is already committed; a lost notification only
		// delays external consumers.
		slog.ErrorContext(ctx, "Failed to publish change event",
			"collection", collection,
			"op", op,
			"key", key,
			"error", err)
	}
}
