package usage

import (
	"sync"
	"time"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
)

// Stats accumulates process-wide download counters. Write-only during
// handling; read by the /stats command.
type Stats struct {
	mu        sync.Mutex
	startTime time.Time
	total     int64
	platforms map[domain.Platform]int64
}

func NewStats(now time.Time) *Stats {
	return &Stats{
		startTime: now,
		platforms: make(map[domain.Platform]int64),
	}
}

// RecordDownload counts one accepted download for the platform.
func (s *Stats) RecordDownload(platform domain.Platform) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.platforms[platform]++
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	StartTime      time.Time
	TotalDownloads int64
	PlatformCounts map[domain.Platform]int64
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.Platform]int64, len(s.platforms))
	for platform, count := range s.platforms {
		counts[platform] = count
	}

	return Snapshot{
		StartTime:      s.startTime,
		TotalDownloads: s.total,
		PlatformCounts: counts,
	}
}

// PlatformShare returns the percentage of total downloads for the platform,
// rounded to the nearest integer.
func (s Snapshot) PlatformShare(platform domain.Platform) int {
	if s.TotalDownloads == 0 {
		return 0
	}

	return int((float64(s.PlatformCounts[platform])/float64(s.TotalDownloads))*100 + 0.5)
}
