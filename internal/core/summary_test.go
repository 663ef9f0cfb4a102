package core

import (
	"reflect"
	"testing"
)

func pay(id int64, student, date string, cents int64) Payment {
	d, _ := ParseDate(date)
	return Payment{ID: id, Student: student, Date: d, Amount: Money{Cents: cents}}
}

func TestSummarize(t *testing.T) {
	payments := []Payment{
		pay(1, "Dana", "2024-03-01", 10000),
		pay(2, "Noa", "2024-03-08", 12050),
		pay(3, "Dana", "2024-04-15", 10000),
	}
	s := Summarize(payments)

	if s.Total.Cents != 32050 {
		t.Fatalf("total = %d, want 32050", s.Total.Cents)
	}
	// One bar per payment record in iteration order, not per student.
	wantLabels := []string{"Dana", "Noa", "Dana"}
	if !reflect.DeepEqual(s.Chart.Labels, wantLabels) {
		t.Fatalf("labels = %v, want %v", s.Chart.Labels, wantLabels)
	}
	wantValues := []float64{100, 120.5, 100}
	if !reflect.DeepEqual(s.Chart.Values, wantValues) {
		t.Fatalf("values = %v, want %v", s.Chart.Values, wantValues)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total.Cents != 0 || len(s.Chart.Labels) != 0 || len(s.Chart.Values) != 0 {
		t.Fatalf("unexpected summary for empty ledger: %+v", s)
	}
}

func TestSummarizeOrderIndependentTotal(t *testing.T) {
	a := []Payment{pay(1, "A", "2024-01-01", 100), pay(2, "B", "2024-02-01", 250), pay(3, "C", "2024-03-01", 75)}
	b := []Payment{a[2], a[0], a[1]}
	if Summarize(a).Total != Summarize(b).Total {
		t.Fatalf("total depends on order")
	}
}

func TestGroupForReceiptAll(t *testing.T) {
	payments := []Payment{
		pay(1, "Dana", "2024-03-01", 10000),
		pay(2, "Noa", "2024-03-08", 12050),
		pay(3, "Dana", "2024-04-15", 10000),
	}
	g := GroupForReceipt(payments, "")

	if len(g.Rows) != len(payments) {
		t.Fatalf("rows = %d, want %d", len(g.Rows), len(payments))
	}
	if g.Total != Summarize(payments).Total {
		t.Fatalf("group total %d differs from summary total", g.Total.Cents)
	}
	// Full month names, first-occurrence order, deduplicated.
	want := []string{"March", "April"}
	if !reflect.DeepEqual(g.Months, want) {
		t.Fatalf("months = %v, want %v", g.Months, want)
	}
}

func TestGroupForReceiptFiltered(t *testing.T) {
	payments := []Payment{
		pay(1, "Dana", "2024-03-01", 10000),
		pay(2, "Noa", "2024-03-08", 12050),
		pay(3, "Dana", "2024-04-15", 10000),
	}
	g := GroupForReceipt(payments, "Dana")

	if len(g.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(g.Rows))
	}
	for _, r := range g.Rows {
		if r.Student != "Dana" {
			t.Fatalf("row for %q leaked into filtered group", r.Student)
		}
	}
	if g.Total.Cents != 20000 {
		t.Fatalf("total = %d, want 20000", g.Total.Cents)
	}
	// Abbreviated month names for a single student's receipt.
	want := []string{"Mar", "Apr"}
	if !reflect.DeepEqual(g.Months, want) {
		t.Fatalf("months = %v, want %v", g.Months, want)
	}
}

func TestGroupForReceiptUnknownStudent(t *testing.T) {
	g := GroupForReceipt([]Payment{pay(1, "Dana", "2024-03-01", 100)}, "Nobody")
	if len(g.Rows) != 0 || g.Total.Cents != 0 || len(g.Months) != 0 {
		t.Fatalf("expected empty group, got %+v", g)
	}
}
