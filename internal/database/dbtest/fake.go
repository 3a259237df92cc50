// Package dbtest provides an in-memory database.DB double for unit tests.
package dbtest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"career-guide/internal/database"
)

type Call struct {
	Query string
	Args  []any
}

// QueryHandler answers a read. Returning nil rows yields an empty result.
type QueryHandler func(query string, args []any) ([][]any, error)

type FakeDB struct {
	mu sync.Mutex

	OnQuery  QueryHandler
	OnExec   func(query string, args []any) (int64, error)
	BeginErr error

	Execs     []Call
	Queries   []Call
	Commits   int
	Rollbacks int
	Closed    bool
}

func (f *FakeDB) Ping(context.Context) error { return nil }

func (f *FakeDB) Close() error {
	f.mu.Lock()
	f.Closed = true
	f.mu.Unlock()
	return nil
}

func (f *FakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.mu.Lock()
	f.Execs = append(f.Execs, Call{Query: query, Args: args})
	h := f.OnExec
	f.mu.Unlock()
	if h != nil {
		return h(query, args)
	}
	return 1, nil
}

func (f *FakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.mu.Lock()
	f.Queries = append(f.Queries, Call{Query: query, Args: args})
	h := f.OnQuery
	f.mu.Unlock()
	if h == nil {
		return &Rows{}, nil
	}
	data, err := h(query, args)
	if err != nil {
		return nil, err
	}
	return &Rows{data: data}, nil
}

func (f *FakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	rows, err := f.Query(ctx, query, args...)
	if err != nil {
		return errRow{err: err}
	}
	r := rows.(*Rows)
	if !r.Next() {
		return errRow{err: ErrNoRows}
	}
	return r
}

func (f *FakeDB) Begin(context.Context) (database.Tx, error) {
	if f.BeginErr != nil {
		return nil, f.BeginErr
	}
	return &Tx{db: f}, nil
}

// ExecsContaining returns the recorded writes whose SQL contains substr.
func (f *FakeDB) ExecsContaining(substr string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.Execs {
		if strings.Contains(c.Query, substr) {
			out = append(out, c)
		}
	}
	return out
}

type Tx struct {
	db   *FakeDB
	done bool
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *Tx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *Tx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *Tx) Commit(context.Context) error {
	if t.done {
		return errors.New("tx already closed")
	}
	t.done = true
	t.db.mu.Lock()
	t.db.Commits++
	t.db.mu.Unlock()
	return nil
}

func (t *Tx) Rollback(context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.db.mu.Lock()
	t.db.Rollbacks++
	t.db.mu.Unlock()
	return nil
}

var ErrNoRows = errors.New("no rows in result set")

type Rows struct {
	data [][]any
	pos  int
	cur  []any
}

func (r *Rows) Close() {}

func (r *Rows) Next() bool {
	if r.pos >= len(r.data) {
		r.cur = nil
		return false
	}
	r.cur = r.data[r.pos]
	r.pos++
	return true
}

func (r *Rows) Err() error { return nil }

func (r *Rows) Scan(dest ...any) error {
	if r.cur == nil {
		return errors.New("scan called without row")
	}
	if len(dest) != len(r.cur) {
		return fmt.Errorf("scan: expected %d destinations, got %d", len(r.cur), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		target := dv.Elem()
		if r.cur[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		src := reflect.ValueOf(r.cur[i])
		if !src.Type().ConvertibleTo(target.Type()) {
			return fmt.Errorf("scan: cannot assign %s to %s", src.Type(), target.Type())
		}
		target.Set(src.Convert(target.Type()))
	}
	return nil
}

type errRow struct{ err error }

func (e errRow) Scan(...any) error { return e.err }
