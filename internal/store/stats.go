package store

import (
	"context"
	"fmt"
	"time"
)

// PathCount is a page and how often it was viewed.
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors     int64        `json:"total_visitors"`
	UniqueVisitors    int64        `json:"unique_visitors"`
	VisitorsToday     int64        `json:"visitors_today"`
	VisitorsThisWeek  int64        `json:"visitors_this_week"`
	TopPaths          []PathCount  `json:"top_paths"`
	RecentVisitors    []Visit      `json:"recent_visitors"`
	SubmissionsSent   int64        `json:"submissions_sent"`
	SubmissionsFailed int64        `json:"submissions_failed"`
	RecentSubmissions []Submission `json:"recent_submissions"`
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{s.stamp(startOfDay)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{s.stamp(weekAgo)}},
		{&stats.SubmissionsSent, `SELECT COUNT(*) FROM submissions WHERE status = 'sent'`, nil},
		{&stats.SubmissionsFailed, `SELECT COUNT(*) FROM submissions WHERE status = 'failed'`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("counting: %w", err)
		}
	}

	top, err := s.topPaths(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopPaths = top

	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentSubmissions, err = s.RecentSubmissions(ctx, 20); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top paths: %w", err)
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, fmt.Errorf("scanning path count: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}
