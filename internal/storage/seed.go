package storage

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lezioni/internal/core"
	"lezioni/internal/store"
)

// SeedRoster loads the configured initial roster into the store on startup.
// Each line is "name;price" (blank lines and # comments skipped) and goes
// through the same add path as normal form input, so re-running against an
// existing database is an idempotent upsert. A missing file means an empty
// seed list.
func SeedRoster(ctx context.Context, rs store.RosterStore, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	seeded := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, priceStr, ok := strings.Cut(line, ";")
		if !ok {
			slog.WarnContext(ctx, "Skipping malformed seed line", "line", line)
			continue
		}
		cents, err := core.ParseDecimalToCents(priceStr)
		if err != nil {
			slog.WarnContext(ctx, "Skipping seed line with bad price", "line", line, "error", err)
			continue
		}
		s := core.Student{Name: strings.TrimSpace(name), Price: core.Money{Cents: cents}}
		if err := s.Validate(); err != nil {
			slog.WarnContext(ctx, "Skipping invalid seed student", "line", line, "error", err)
			continue
		}
		if err := rs.AddStudent(ctx, s); err != nil {
			return fmt.Errorf("seed student %q: %w", s.Name, err)
		}
		seeded++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	if seeded > 0 {
		slog.InfoContext(ctx, "Roster seeded", "path", path, "students", seeded)
	}
	return nil
}
