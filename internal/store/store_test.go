package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(t *testing.T, c *clock) *Store {
	t.Helper()
	s, err := OpenMemory(WithClock(c.now), WithSalt("pepper"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := newTestStore(t, &clock{t: time.Now()})

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.TrackVisit(context.Background(), "1.1.1.1", "ua", "/"))
}

func TestStats(t *testing.T) {
	c := &clock{t: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	s := newTestStore(t, c)
	ctx := context.Background()

	visit := func(at time.Time, ip, path string) {
		c.t = at
		require.NoError(t, s.TrackVisit(ctx, ip, "test-agent", path))
	}

	visit(time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC), "10.0.0.1", "/")
	visit(time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC), "10.0.0.2", "/")
	visit(time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), "10.0.0.1", "/")
	visit(time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC), "10.0.0.3", "/contact")

	form := contact.Form{Name: "Ana", Email: "ana@x.com", Message: "Hi"}
	require.NoError(t, s.RecordSubmission(ctx, form, contact.Outcome{Sent: true}))
	require.NoError(t, s.RecordSubmission(ctx, form, contact.Outcome{Err: errors.New("boom")}))

	c.t = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	assert.EqualValues(t, 1, stats.SubmissionsSent)
	assert.EqualValues(t, 1, stats.SubmissionsFailed)

	require.Len(t, stats.TopPaths, 2)
	assert.Equal(t, PathCount{Path: "/", Views: 3}, stats.TopPaths[0])

	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/contact", stats.RecentVisitors[0].Path)
	assert.Equal(t, time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC), stats.RecentVisitors[0].Timestamp)

	require.Len(t, stats.RecentSubmissions, 2)
	assert.Equal(t, 2, stats.RecentSubmissions[0].MessageLength)
	statuses := []string{stats.RecentSubmissions[0].Status, stats.RecentSubmissions[1].Status}
	assert.ElementsMatch(t, []string{"sent", "failed"}, statuses)
}

func TestCleanup(t *testing.T) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newTestStore(t, c)
	ctx := context.Background()

	require.NoError(t, s.TrackVisit(ctx, "a", "", "/"))
	c.t = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.TrackVisit(ctx, "b", "", "/"))

	c.t = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, s.HashIP("b"), visits[0].HashedIP)
}

func TestTracker(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, err := OpenMemory(WithSalt("pepper"))
	require.NoError(t, err)
	defer s.Close()

	tr := NewTracker(s, zap.NewNop(), 16)

	for i := 0; i < 5; i++ {
		assert.True(t, tr.Track("10.0.0.1", "ua", "/"))
	}
	tr.Close()
	tr.Close()

	assert.False(t, tr.Track("10.0.0.1", "ua", "/"), "closed tracker rejects")

	visits, err := s.RecentVisits(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, visits, 5)
	assert.Equal(t, s.HashIP("10.0.0.1"), visits[0].HashedIP)
}
