package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lezioni/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable record store behind both collections.
// Students are keyed by name with silent upsert; payments get store-assigned
// ids that are never reused after deletion.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AddStudent implements store.RosterStore. Re-adding an existing name
// replaces the record in place, matching the key-based upsert the page
// relies on.
func (r *SQLiteRepository) AddStudent(ctx context.Context, s core.Student) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (name, price_cents) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET price_cents = excluded.price_cents`,
		s.Name, s.Price.Cents)
	if err != nil {
		return fmt.Errorf("add student: %w", err)
	}

	slog.InfoContext(ctx, "Student saved",
		"student_name", s.Name,
		"price_cents", s.Price.Cents)
	return nil
}

// GetStudent implements store.RosterStore.
func (r *SQLiteRepository) GetStudent(ctx context.Context, name string) (core.Student, error) {
	var s core.Student
	err := r.db.QueryRowContext(ctx,
		`SELECT name, price_cents FROM students WHERE name = ?`, name).
		Scan(&s.Name, &s.Price.Cents)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Student{}, core.ErrStudentNotFound
	}
	if err != nil {
		return core.Student{}, fmt.Errorf("get student %q: %w", name, err)
	}
	return s, nil
}

// ListStudents implements store.RosterStore. Order follows the primary key.
func (r *SQLiteRepository) ListStudents(ctx context.Context) ([]core.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, price_cents FROM students ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var out []core.Student
	for rows.Next() {
		var s core.Student
		if err := rows.Scan(&s.Name, &s.Price.Cents); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return out, nil
}

// DeleteStudent implements store.RosterStore. Deleting an absent name is not
// an error, and the student's historical payments are left untouched.
func (r *SQLiteRepository) DeleteStudent(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete student %q: %w", name, err)
	}
	return nil
}

// AddPayment implements store.LedgerStore and returns the assigned id.
func (r *SQLiteRepository) AddPayment(ctx context.Context, p core.Payment) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (student, date, amount_cents) VALUES (?, ?, ?)`,
		p.Student, p.Date.String(), p.Amount.Cents)
	if err != nil {
		return 0, fmt.Errorf("add payment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("payment id: %w", err)
	}

	slog.InfoContext(ctx, "Payment saved",
		"payment_id", id,
		"student_name", p.Student,
		"date", p.Date.String(),
		"amount_cents", p.Amount.Cents)
	return id, nil
}

// ListPayments implements store.LedgerStore. Order follows the assigned id.
func (r *SQLiteRepository) ListPayments(ctx context.Context) ([]core.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, student, date, amount_cents FROM payments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []core.Payment
	for rows.Next() {
		var (
			p       core.Payment
			rawDate string
		)
		if err := rows.Scan(&p.ID, &p.Student, &rawDate, &p.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		d, err := core.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("payment %d has malformed date %q: %w", p.ID, rawDate, err)
		}
		p.Date = d
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return out, nil
}

// DeletePayment implements store.LedgerStore. Absent ids are not an error.
func (r *SQLiteRepository) DeletePayment(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete payment %d: %w", id, err)
	}
	return nil
}

// ClearPayments implements store.LedgerStore. The id sequence survives the
// clear, so later payments keep getting fresh ids.
func (r *SQLiteRepository) ClearPayments(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments`); err != nil {
		return fmt.Errorf("clear payments: %w", err)
	}
	slog.InfoContext(ctx, "Payment collection cleared")
	return nil
}
