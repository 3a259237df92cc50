package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"career-guide/internal/domain/student"
)

// StudentStore keeps student records in process memory. Records are lost on
// restart.
type StudentStore struct {
	mu      sync.RWMutex
	records map[string]*entry
	seq     atomic.Int64
	now     func() time.Time
}

type entry struct {
	n      int64
	record student.Record
}

func NewStudentStore() *StudentStore {
	return &StudentStore{
		records: make(map[string]*entry),
		now:     time.Now,
	}
}

func (s *StudentStore) Create(_ context.Context, r student.Record) (student.Record, error) {
	n := s.seq.Add(1)

	rec := r.Clone()
	rec.ID = fmt.Sprintf("student_%d", n)
	rec.CreatedAt = s.now().UTC()
	rec.Progress = make(map[string]bool, len(rec.Pathway))
	for skill := range rec.Pathway {
		rec.Progress[skill] = false
	}
	rec.Profile = student.Profile{}

	s.mu.Lock()
	s.records[rec.ID] = &entry{n: n, record: rec}
	s.mu.Unlock()

	return rec.Clone(), nil
}

func (s *StudentStore) GetByID(_ context.Context, id string) (student.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.records[id]
	if !ok {
		return student.Record{}, student.ErrNotFound
	}
	return e.record.Clone(), nil
}

func (s *StudentStore) List(_ context.Context) ([]student.Record, error) {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.records))
	for _, e := range s.records {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].n < entries[j].n })

	out := make([]student.Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.record.Clone())
	}
	s.mu.RUnlock()

	return out, nil
}

func (s *StudentStore) UpdateProgress(_ context.Context, id string, skill string) (student.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[id]
	if !ok {
		return student.Record{}, student.ErrNotFound
	}
	if _, ok := e.record.Progress[skill]; !ok {
		return student.Record{}, student.ErrInvalidSkill
	}
	e.record.Progress[skill] = true
	return e.record.Clone(), nil
}

func (s *StudentStore) UpdateProfile(_ context.Context, id string, patch student.ProfilePatch) (student.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[id]
	if !ok {
		return student.Record{}, student.ErrNotFound
	}
	e.record.Profile = e.record.Profile.Merge(patch)
	return e.record.Clone(), nil
}

func (s *StudentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
