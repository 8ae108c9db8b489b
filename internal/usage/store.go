// Package usage tracks per-user daily download quotas and process-wide bot
// statistics. Nothing here is persisted; counters reset on restart.
package usage

import (
	"sync"
	"time"

	errs "github.com/mhaminn/social-scraper-bot/internal/core/errors"
)

// Store gates download requests against a per-user daily limit. The record
// for a user is created lazily and reset whenever its stored date is not
// today.
type Store interface {
	// Consume accepts one download request, returning the remaining quota.
	// Returns ErrQuotaExceeded without incrementing when the user is at the
	// limit.
	Consume(userID int64, now time.Time) (int, error)

	// Used reports how many requests the user has spent today.
	Used(userID int64, now time.Time) int

	// ActiveUsers reports how many distinct users have records.
	ActiveUsers() int
}

type record struct {
	count int
	date  string
}

// MemoryStore is the in-process Store implementation. Handlers run on
// separate goroutines, so access is mutex-guarded.
type MemoryStore struct {
	mu      sync.Mutex
	limit   int
	records map[int64]*record
}

func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		limit:   limit,
		records: make(map[int64]*record),
	}
}

func (s *MemoryStore) Consume(userID int64, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.freshen(userID, now)

	if rec.count >= s.limit {
		return 0, errs.ErrQuotaExceeded
	}

	rec.count++

	return s.limit - rec.count, nil
}

func (s *MemoryStore) Used(userID int64, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.freshen(userID, now).count
}

func (s *MemoryStore) ActiveUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Prune drops records from previous days so the map does not grow with
// every user that ever sent a link.
func (s *MemoryStore) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := now.Format(time.DateOnly)
	pruned := 0

	for userID, rec := range s.records {
		if rec.date != today {
			delete(s.records, userID)

			pruned++
		}
	}

	return pruned
}

// freshen returns the user's record, creating or resetting it when the
// stored date is not the current calendar day. Callers must hold the lock.
func (s *MemoryStore) freshen(userID int64, now time.Time) *record {
	today := now.Format(time.DateOnly)

	rec, ok := s.records[userID]
	if !ok || rec.date != today {
		rec = &record{date: today}
		s.records[userID] = rec
	}

	return rec
}

// UntilReset returns the time remaining until the quota resets at midnight.
func UntilReset(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	return midnight.Sub(now)
}
