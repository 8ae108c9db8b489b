package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaminn/social-scraper-bot/internal/core/domain"
	errs "github.com/mhaminn/social-scraper-bot/internal/core/errors"
)

func TestConsumeUntilLimit(t *testing.T) {
	store := NewMemoryStore(10)
	now := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	for i := 1; i <= 10; i++ {
		remaining, err := store.Consume(7, now)
		require.NoError(t, err)
		assert.Equal(t, 10-i, remaining)
	}

	_, err := store.Consume(7, now)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrQuotaExceeded))
	assert.Equal(t, 10, store.Used(7, now))
}

func TestConsumeResetsNextDay(t *testing.T) {
	store := NewMemoryStore(2)
	day1 := time.Date(2025, 6, 1, 23, 50, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 5, 0, 0, time.UTC)

	_, err := store.Consume(7, day1)
	require.NoError(t, err)
	_, err = store.Consume(7, day1)
	require.NoError(t, err)

	_, err = store.Consume(7, day1)
	require.Error(t, err)

	remaining, err := store.Consume(7, day2)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, 1, store.Used(7, day2))
}

func TestConsumeIsPerUser(t *testing.T) {
	store := NewMemoryStore(1)
	now := time.Now()

	_, err := store.Consume(1, now)
	require.NoError(t, err)

	_, err = store.Consume(1, now)
	require.Error(t, err)

	_, err = store.Consume(2, now)
	require.NoError(t, err)

	assert.Equal(t, 2, store.ActiveUsers())
}

func TestUsedWithoutConsume(t *testing.T) {
	store := NewMemoryStore(5)

	assert.Equal(t, 0, store.Used(42, time.Now()))
}

func TestPrune(t *testing.T) {
	store := NewMemoryStore(5)
	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	_, err := store.Consume(1, day1)
	require.NoError(t, err)
	_, err = store.Consume(2, day1)
	require.NoError(t, err)
	_, err = store.Consume(3, day2)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Prune(day2))
	assert.Equal(t, 1, store.ActiveUsers())
	assert.Equal(t, 1, store.Used(3, day2))
}

func TestUntilReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, 2*time.Hour+30*time.Minute, UntilReset(now))
}

func TestStatsSnapshot(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stats := NewStats(start)

	stats.RecordDownload(domain.PlatformInstagram)
	stats.RecordDownload(domain.PlatformInstagram)
	stats.RecordDownload(domain.PlatformYouTube)

	snapshot := stats.Snapshot()

	assert.Equal(t, int64(3), snapshot.TotalDownloads)
	assert.Equal(t, int64(2), snapshot.PlatformCounts[domain.PlatformInstagram])
	assert.Equal(t, 67, snapshot.PlatformShare(domain.PlatformInstagram))
	assert.Equal(t, 33, snapshot.PlatformShare(domain.PlatformYouTube))
	assert.Equal(t, 0, snapshot.PlatformShare(domain.PlatformTikTok))
	assert.Equal(t, start, snapshot.StartTime)
}

func TestStatsSnapshotIsCopy(t *testing.T) {
	stats := NewStats(time.Now())
	stats.RecordDownload(domain.PlatformTikTok)

	snapshot := stats.Snapshot()
	stats.RecordDownload(domain.PlatformTikTok)

	assert.Equal(t, int64(1), snapshot.TotalDownloads)
	assert.Equal(t, int64(1), snapshot.PlatformCounts[domain.PlatformTikTok])
}
