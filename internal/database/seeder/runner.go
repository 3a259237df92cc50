package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-guide/internal/database"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

// Run verifies the schema of every seeder up front, then runs them in order.
// It stops at the first failure; seeders already run stay committed.
func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	var tables []Table
	for _, s := range r.Seeders {
		if s != nil {
			tables = append(tables, s.Tables()...)
		}
	}
	if err := EnsureSchema(ctx, db, tables...); err != nil {
		return fmt.Errorf("%w (run migrations first)", err)
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("seed status=ok seeder=%s took=%s", s.Name(), time.Since(start).Round(time.Millisecond))
		}
	}
	return nil
}
