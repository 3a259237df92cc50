package seeder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"career-guide/internal/database"
)

// Table names a table and the columns a seeder writes to.
type Table struct {
	Name    string
	Columns []string
}

var errSchemaMismatch = errors.New("schema mismatch")

// EnsureSchema checks every listed table in one information_schema query and
// reports all missing columns together. A mismatch usually means migrations
// have not been applied.
func EnsureSchema(ctx context.Context, db database.DB, tables ...Table) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if len(tables) == 0 {
		return nil
	}

	names := make([]string, 0, len(tables))
	for _, t := range tables {
		if t.Name == "" {
			return fmt.Errorf("empty table name")
		}
		names = append(names, t.Name)
	}

	rows, err := db.Query(
		ctx,
		`SELECT table_name, column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = ANY($1)`,
		names,
	)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]struct{})
	for rows.Next() {
		var table, column string
		if err := rows.Scan(&table, &column); err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		existing[table+"."+column] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	var missing []string
	for _, t := range tables {
		for _, col := range t.Columns {
			if _, ok := existing[t.Name+"."+col]; !ok {
				missing = append(missing, t.Name+"."+col)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", errSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
