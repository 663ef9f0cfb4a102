package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar date, carried as YYYY-MM-DD on the wire.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Student is a roster entry. Name is the primary key; Price is the
	// per-lesson charge copied onto every payment at creation time.
	Student struct {
		Name  string
		Price Money
	}

	// Payment is a ledger entry. Amount is a frozen copy of the student's
	// price when the payment was recorded, never recomputed.
	Payment struct {
		ID      int64
		Student string
		Date    Date
		Amount  Money
	}
)

var (
	ErrEmptyName       = errors.New("empty student name")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrStudentNotFound = errors.New("student not found")
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MonthName returns the full month name, e.g. "March".
func (d Date) MonthName() string {
	return d.Time.Month().String()
}

// MonthAbbr returns the abbreviated month name, e.g. "Mar".
func (d Date) MonthAbbr() string {
	return d.Format("Jan")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (s Student) Validate() error {
	if len(strings.TrimSpace(s.Name)) == 0 {
		return ErrEmptyName
	}
	if len(s.Name) > 100 {
		return errors.New("student name too long (max 100 characters)")
	}
	return s.Price.Validate()
}

func (p Payment) Validate() error {
	if len(strings.TrimSpace(p.Student)) == 0 {
		return ErrEmptyName
	}
	if err := p.Date.Validate(); err != nil {
		return err
	}
	return p.Amount.Validate()
}
