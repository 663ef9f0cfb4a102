package services

import (
	"context"
	"errors"
	"testing"

	"lezioni/internal/core"
	"lezioni/internal/store/memory"
)

func newLedgerFixture(t *testing.T) (*RosterService, *LedgerService, *memory.Store) {
	t.Helper()
	st := memory.New()
	return NewRosterService(st, nil), NewLedgerService(st, st, nil), st
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()
	roster, ledger, _ := newLedgerFixture(t)

	if _, err := roster.AddStudent(ctx, "Dana", "100.00"); err != nil {
		t.Fatalf("add student: %v", err)
	}

	p, err := ledger.RecordPayment(ctx, "Dana", "2024-03-01")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if p.Amount.Cents != 10000 {
		t.Fatalf("amount not copied from price: %d", p.Amount.Cents)
	}

	sum, err := ledger.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Total.Cents != 10000 {
		t.Fatalf("total = %d, want 10000", sum.Total.Cents)
	}
}

func TestRecordPaymentStudentNotFound(t *testing.T) {
	ctx := context.Background()
	roster, ledger, _ := newLedgerFixture(t)

	if _, err := roster.AddStudent(ctx, "Dana", "100.00"); err != nil {
		t.Fatalf("add student: %v", err)
	}
	if err := roster.RemoveStudent(ctx, "Dana"); err != nil {
		t.Fatalf("remove student: %v", err)
	}

	// Stale selection after deletion must fail, not record an empty amount.
	if _, err := ledger.RecordPayment(ctx, "Dana", "2024-03-01"); !errors.Is(err, core.ErrStudentNotFound) {
		t.Fatalf("got %v, want ErrStudentNotFound", err)
	}
	payments, _ := ledger.Payments(ctx)
	if len(payments) != 0 {
		t.Fatalf("payment created for missing student: %+v", payments)
	}
}

func TestRecordPaymentBadDate(t *testing.T) {
	ctx := context.Background()
	roster, ledger, _ := newLedgerFixture(t)
	if _, err := roster.AddStudent(ctx, "Dana", "100.00"); err != nil {
		t.Fatalf("add student: %v", err)
	}
	if _, err := ledger.RecordPayment(ctx, "Dana", "01/03/2024"); !errors.Is(err, core.ErrInvalidDate) {
		t.Fatalf("got %v, want ErrInvalidDate", err)
	}
}

func TestAmountFrozenAgainstPriceChange(t *testing.T) {
	ctx := context.Background()
	roster, ledger, _ := newLedgerFixture(t)

	if _, err := roster.AddStudent(ctx, "Dana", "100.00"); err != nil {
		t.Fatalf("add student: %v", err)
	}
	p, err := ledger.RecordPayment(ctx, "Dana", "2024-03-01")
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	// Price change after the fact must not touch the recorded amount.
	if _, err := roster.AddStudent(ctx, "Dana", "150.00"); err != nil {
		t.Fatalf("update price: %v", err)
	}
	payments, _ := ledger.Payments(ctx)
	if payments[0].Amount.Cents != p.Amount.Cents || payments[0].Amount.Cents != 10000 {
		t.Fatalf("amount was recomputed: %d", payments[0].Amount.Cents)
	}

	// New payments pick up the current price.
	p2, err := ledger.RecordPayment(ctx, "Dana", "2024-04-01")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if p2.Amount.Cents != 15000 {
		t.Fatalf("new payment ignored current price: %d", p2.Amount.Cents)
	}
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	roster, ledger, _ := newLedgerFixture(t)

	if _, err := roster.AddStudent(ctx, "Dana", "100.00"); err != nil {
		t.Fatalf("add student: %v", err)
	}
	p1, _ := ledger.RecordPayment(ctx, "Dana", "2024-03-01")
	p2, _ := ledger.RecordPayment(ctx, "Dana", "2024-03-08")

	if err := ledger.RemovePayment(ctx, p1.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	payments, _ := ledger.Payments(ctx)
	if len(payments) != 1 || payments[0].ID != p2.ID {
		t.Fatalf("unexpected ledger after remove: %+v", payments)
	}

	if err := ledger.ClearAll(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	payments, _ = ledger.Payments(ctx)
	if len(payments) != 0 {
		t.Fatalf("ledger not empty after clear: %+v", payments)
	}

	sum, _ := ledger.Summary(ctx)
	if sum.Total.Cents != 0 {
		t.Fatalf("total after clear = %d", sum.Total.Cents)
	}
}

func TestReceiptMonthsScenario(t *testing.T) {
	ctx := context.Background()
	roster, ledger, _ := newLedgerFixture(t)

	if _, err := roster.AddStudent(ctx, "Dana", "100.00"); err != nil {
		t.Fatalf("add student: %v", err)
	}
	if _, err := ledger.RecordPayment(ctx, "Dana", "2024-03-01"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := ledger.RecordPayment(ctx, "Dana", "2024-04-15"); err != nil {
		t.Fatalf("record: %v", err)
	}

	g, err := ledger.Receipt(ctx, "Dana")
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if g.Total.Cents != 20000 {
		t.Fatalf("total = %d, want 20000", g.Total.Cents)
	}
	if len(g.Months) != 2 || g.Months[0] != "Mar" || g.Months[1] != "Apr" {
		t.Fatalf("months = %v", g.Months)
	}

	// Unfiltered receipt covers the same rows as the full ledger and
	// agrees with the summary total.
	all, err := ledger.Receipt(ctx, "")
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	payments, _ := ledger.Payments(ctx)
	if len(all.Rows) != len(payments) {
		t.Fatalf("unfiltered receipt rows %d != ledger %d", len(all.Rows), len(payments))
	}
	sum, _ := ledger.Summary(ctx)
	if all.Total != sum.Total {
		t.Fatalf("receipt total %d != summary total %d", all.Total.Cents, sum.Total.Cents)
	}
}

func TestLedgerPublishesChanges(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	pub := &recordingPublisher{}
	roster := NewRosterService(st, nil)
	ledger := NewLedgerService(st, st, pub)

	if _, err := roster.AddStudent(ctx, "Dana", "100.00"); err != nil {
		t.Fatalf("add student: %v", err)
	}
	p, _ := ledger.RecordPayment(ctx, "Dana", "2024-03-01")
	_ = ledger.RemovePayment(ctx, p.ID)
	_ = ledger.ClearAll(ctx)

	want := []string{"payments/add/1", "payments/delete/1", "payments/clear/"}
	if len(pub.changes) != len(want) {
		t.Fatalf("changes = %v", pub.changes)
	}
	for i := range want {
		if pub.changes[i] != want[i] {
			t.Fatalf("changes[%d] = %q, want %q", i, pub.changes[i], want[i])
		}
	}
}
