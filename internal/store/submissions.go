package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Itsme-Debapriya/portfolio/internal/contact"
)

// Submission is a journaled contact attempt. The message body is not kept.
type Submission struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	MessageLength int       `json:"message_length"`
	Status        string    `json:"status"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordSubmission implements contact.Recorder.
func (s *Store) RecordSubmission(ctx context.Context, f contact.Form, o contact.Outcome) error {
	var errText string
	if o.Err != nil {
		errText = o.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, name, email, message_length, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), f.Name, f.Email, len(f.Message), o.Status(), errText, s.stamp(s.now()))
	if err != nil {
		return fmt.Errorf("recording submission: %w", err)
	}
	return nil
}

// RecentSubmissions returns the latest attempts, newest first.
func (s *Store) RecentSubmissions(ctx context.Context, limit int) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message_length, status, error, created_at
		FROM submissions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var (
			sub Submission
			ts  string
		)
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.MessageLength, &sub.Status, &sub.Error, &ts); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		sub.CreatedAt = parseStamp(ts)
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
