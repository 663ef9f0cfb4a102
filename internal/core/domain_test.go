package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 1 {
		t.Fatalf("unexpected date %v", d)
	}
	if d.String() != "2024-03-01" {
		t.Fatalf("round trip got %q", d.String())
	}

	for _, bad := range []string{"", "2024-3-1", "01/03/2024", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("%q expected error", bad)
		}
	}
}

func TestMonthLabels(t *testing.T) {
	d := NewDate(2024, 3, 1)
	if d.MonthName() != "March" {
		t.Fatalf("got %q", d.MonthName())
	}
	if d.MonthAbbr() != "Mar" {
		t.Fatalf("got %q", d.MonthAbbr())
	}
}

func TestStudentValidate(t *testing.T) {
	good := Student{Name: "Dana", Price: Money{Cents: 10000}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Student{
		{Name: "", Price: Money{Cents: 100}},
		{Name: "   ", Price: Money{Cents: 100}},
		{Name: "Dana", Price: Money{Cents: 0}},
		{Name: "Dana", Price: Money{Cents: -50}},
	}
	for i, s := range bads {
		if err := s.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestPaymentValidate(t *testing.T) {
	good := Payment{Student: "Dana", Date: NewDate(2024, 3, 1), Amount: Money{Cents: 10000}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Payment{
		{Student: "", Date: NewDate(2024, 3, 1), Amount: Money{Cents: 1}},
		{Student: "Dana", Date: Date{}, Amount: Money{Cents: 1}},
		{Student: "Dana", Date: NewDate(2024, 3, 1), Amount: Money{Cents: 0}},
	}
	for i, p := range bads {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
