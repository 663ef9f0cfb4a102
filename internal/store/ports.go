package store

import (
	"context"

	"lezioni/internal/core"
)

// Ports for the record store. The store is constructed once at process start
// and threaded into each service; no component reaches it through a global.
type (
	// RosterStore persists the student collection, keyed by name.
	RosterStore interface {
		// AddStudent overwrites any existing record with the same name.
		AddStudent(ctx context.Context, s core.Student) error
		// GetStudent returns core.ErrStudentNotFound for unknown names.
		GetStudent(ctx context.Context, name string) (core.Student, error)
		// ListStudents returns the full roster in store iteration order.
		ListStudents(ctx context.Context) ([]core.Student, error)
		// DeleteStudent succeeds for absent names.
		DeleteStudent(ctx context.Context, name string) error
	}

	// LedgerStore persists the payment collection, keyed by assigned id.
	LedgerStore interface {
		// AddPayment assigns and returns a unique, monotonically
		// increasing id. Ids are never reused after deletion.
		AddPayment(ctx context.Context, p core.Payment) (int64, error)
		// ListPayments returns the full ledger in store iteration order.
		ListPayments(ctx context.Context) ([]core.Payment, error)
		// DeletePayment succeeds for absent ids.
		DeletePayment(ctx context.Context, id int64) error
		// ClearPayments empties the collection without recycling ids.
		ClearPayments(ctx context.Context) error
	}

	// RecordStore is the full persistence surface backing both collections.
	RecordStore interface {
		RosterStore
		LedgerStore
	}
)
