package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"lezioni/internal/core"
	"lezioni/internal/events"
	"lezioni/internal/store"
)

// LedgerService mediates the payment lifecycle and aggregate computation.
type LedgerService struct {
	roster store.RosterStore
	ledger store.LedgerStore
	events ChangePublisher
}

func NewLedgerService(roster store.RosterStore, ledger store.LedgerStore, events ChangePublisher) *LedgerService {
	return &LedgerService{roster: roster, ledger: ledger, events: events}
}

// RecordPayment looks up the student's current price and writes a payment
// with that amount frozen in. A stale name (student deleted after the
// pick-list rendered) fails with core.ErrStudentNotFound; nothing is
// recorded. The lookup and the write are two store operations, not one
// transaction; at single-user scale the gap is accepted.
func (s *LedgerService) RecordPayment(ctx context.Context, studentName, dateStr string) (core.Payment, error) {
	date, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Payment{}, err
	}

	st, err := s.roster.GetStudent(ctx, studentName)
	if err != nil {
		return core.Payment{}, err
	}

	p := core.Payment{Student: st.Name, Date: date, Amount: st.Price}
	id, err := s.ledger.AddPayment(ctx, p)
	if err != nil {
		return core.Payment{}, fmt.Errorf("record payment: %w", err)
	}
	p.ID = id

	s.publish(ctx, events.OpAdd, strconv.FormatInt(id, 10))
	return p, nil
}

// RemovePayment deletes one ledger entry. Absent ids are not an error.
func (s *LedgerService) RemovePayment(ctx context.Context, id int64) error {
	if err := s.ledger.DeletePayment(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to delete payment",
			"payment_id", id,
			"error", err)
		return fmt.Errorf("remove payment: %w", err)
	}

	s.publish(ctx, events.OpDelete, strconv.FormatInt(id, 10))
	return nil
}

// ClearAll empties the ledger. Assigned ids are not recycled.
func (s *LedgerService) ClearAll(ctx context.Context) error {
	if err := s.ledger.ClearPayments(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to clear payments", "error", err)
		return fmt.Errorf("clear payments: %w", err)
	}

	s.publish(ctx, events.OpClear, "")
	return nil
}

// Payments returns the full ledger, freshly fetched.
func (s *LedgerService) Payments(ctx context.Context) ([]core.Payment, error) {
	payments, err := s.ledger.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// Summary re-reads the ledger and computes the running total and chart
// series over it.
func (s *LedgerService) Summary(ctx context.Context) (core.Summary, error) {
	payments, err := s.Payments(ctx)
	if err != nil {
		return core.Summary{}, err
	}
	return core.Summarize(payments), nil
}

// Receipt re-reads the ledger and groups it for the receipt formatter,
// filtered to one student when filterStudent is non-empty.
func (s *LedgerService) Receipt(ctx context.Context, filterStudent string) (core.ReceiptGroup, error) {
	payments, err := s.Payments(ctx)
	if err != nil {
		return core.ReceiptGroup{}, err
	}
	return core.GroupForReceipt(payments, filterStudent), nil
}

func (s *LedgerService) publish(ctx context.Context, op, key string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishChange(ctx, events.CollectionPayments, op, key); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change event",
			"collection", events.CollectionPayments,
			"op", op,
			"key", key,
			"error", err)
	}
}
