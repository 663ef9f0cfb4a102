package memory

import (
	"context"
	"testing"

	"lezioni/internal/core"
)

func TestAddStudentUpsert(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.AddStudent(ctx, core.Student{Name: "Dana", Price: core.Money{Cents: 10000}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddStudent(ctx, core.Student{Name: "Dana", Price: core.Money{Cents: 15000}}); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	roster, err := s.ListStudents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected 1 record after re-add, got %d", len(roster))
	}
	if roster[0].Price.Cents != 15000 {
		t.Fatalf("re-add did not replace: price=%d", roster[0].Price.Cents)
	}
}

func TestListStudentsOrderedByName(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, name := range []string{"Noa", "Avi", "Dana"} {
		if err := s.AddStudent(ctx, core.Student{Name: name, Price: core.Money{Cents: 100}}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	roster, _ := s.ListStudents(ctx)
	want := []string{"Avi", "Dana", "Noa"}
	for i, st := range roster {
		if st.Name != want[i] {
			t.Fatalf("roster[%d]=%q, want %q", i, st.Name, want[i])
		}
	}
}

func TestGetStudentNotFound(t *testing.T) {
	s := New()
	if _, err := s.GetStudent(context.Background(), "missing"); err != core.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestPaymentIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	s := New()

	id1, _ := s.AddPayment(ctx, core.Payment{Student: "Dana", Date: core.NewDate(2024, 3, 1), Amount: core.Money{Cents: 100}})
	id2, _ := s.AddPayment(ctx, core.Payment{Student: "Dana", Date: core.NewDate(2024, 3, 8), Amount: core.Money{Cents: 100}})
	if id2 <= id1 {
		t.Fatalf("ids not increasing: %d then %d", id1, id2)
	}

	if err := s.DeletePayment(ctx, id2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	id3, _ := s.AddPayment(ctx, core.Payment{Student: "Dana", Date: core.NewDate(2024, 3, 15), Amount: core.Money{Cents: 100}})
	if id3 <= id2 {
		t.Fatalf("id %d reused after deleting %d", id3, id2)
	}

	if err := s.ClearPayments(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	id4, _ := s.AddPayment(ctx, core.Payment{Student: "Dana", Date: core.NewDate(2024, 4, 1), Amount: core.Money{Cents: 100}})
	if id4 <= id3 {
		t.Fatalf("id %d reused after clear", id4)
	}
}

func TestDeleteAbsentKeysIsNoError(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.DeleteStudent(ctx, "nobody"); err != nil {
		t.Fatalf("delete absent student: %v", err)
	}
	if err := s.DeletePayment(ctx, 42); err != nil {
		t.Fatalf("delete absent payment: %v", err)
	}
}
