// Package contact delivers contact-form submissions to an external email
// service and turns the result into a user-facing notification.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned by senders that are missing credentials.
var ErrNotConfigured = errors.New("email service not configured")

// Form holds the three contact fields. The binding tags are enforced by gin
// when the form is posted.
type Form struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}

// Validate re-checks the constraints the browser enforces with required and
// type=email.
func (f Form) Validate() error {
	var errs []error
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, errors.New("email is required"))
	} else if !plainAddress(f.Email) {
		errs = append(errs, fmt.Errorf("email %q is invalid", f.Email))
	}
	if strings.TrimSpace(f.Message) == "" {
		errs = append(errs, errors.New("message is required"))
	}
	return errors.Join(errs...)
}

// plainAddress accepts a bare addr-spec with a dotted domain. Display-name
// forms such as "Ana <ana@x.com>" and single-label domains are rejected.
func plainAddress(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return false
	}
	_, domain, ok := strings.Cut(addr.Address, "@")
	return ok && strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

// Payload is the template data handed to the email service. The key names are
// fixed by the email template.
type Payload struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
}

// PayloadFrom builds the template data for a form.
func PayloadFrom(f Form) Payload {
	return Payload{
		FromName:  f.Name,
		FromEmail: f.Email,
		Message:   f.Message,
	}
}

// Receipt is the opaque result token returned by a successful send.
type Receipt struct {
	Text string
}

// Sender is the capability to deliver one payload.
type Sender interface {
	Send(ctx context.Context, p Payload) (Receipt, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, p Payload) (Receipt, error)

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, p Payload) (Receipt, error) { return f(ctx, p) }

// Variant selects the styling of a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a non-blocking toast shown after a submission.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

var (
	sentNotification = Notification{
		Title:       "Message Sent Successfully!",
		Description: "Thank you for reaching out. I'll reply soon.",
		Variant:     VariantDefault,
	}
	failedNotification = Notification{
		Title:       "Failed to send message!",
		Description: "Please try again later.",
		Variant:     VariantDestructive,
	}
)

// Outcome is what the page shows after a submission: the form to render
// again and the notification to display.
type Outcome struct {
	Form         Form
	Notification Notification
	Sent         bool
	Receipt      Receipt
	Err          error
}

// Status is the journal label for the outcome.
func (o Outcome) Status() string {
	if o.Sent {
		return "sent"
	}
	return "failed"
}

// Recorder journals submission attempts.
type Recorder interface {
	RecordSubmission(ctx context.Context, f Form, o Outcome) error
}

// Service runs the submission flow.
type Service struct {
	sender   Sender
	recorder Recorder
	log      *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder journals every attempt.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService returns a Service delivering through sender.
func NewService(sender Sender, opts ...Option) *Service {
	s := &Service{sender: sender, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit delivers the form. On success the returned form is empty; on any
// failure it is the submitted form unchanged so the user can resubmit. There
// is no retry.
func (s *Service) Submit(ctx context.Context, f Form) Outcome {
	return s.record(ctx, f, s.submit(ctx, f))
}

// Reject turns a form that failed request binding into the failure outcome
// without contacting the email service.
func (s *Service) Reject(ctx context.Context, f Form, err error) Outcome {
	s.log.Info("rejected contact form", zap.Error(err))
	return s.record(ctx, f, failed(f, fmt.Errorf("invalid form: %w", err)))
}

func (s *Service) record(ctx context.Context, f Form, out Outcome) Outcome {
	if s.recorder != nil {
		if err := s.recorder.RecordSubmission(ctx, f, out); err != nil {
			s.log.Warn("recording submission", zap.Error(err))
		}
	}
	return out
}

func (s *Service) submit(ctx context.Context, f Form) Outcome {
	if err := f.Validate(); err != nil {
		s.log.Info("rejected contact form", zap.Error(err))
		return failed(f, fmt.Errorf("invalid form: %w", err))
	}

	receipt, err := s.sender.Send(ctx, PayloadFrom(f))
	if err != nil {
		s.log.Error("email send failed",
			zap.String("from", f.Email),
			zap.Error(err),
		)
		return failed(f, err)
	}

	s.log.Info("email sent",
		zap.String("from", f.Email),
		zap.String("result", receipt.Text),
	)
	return Outcome{
		Form:         Form{},
		Notification: sentNotification,
		Sent:         true,
		Receipt:      receipt,
	}
}

func failed(f Form, err error) Outcome {
	return Outcome{
		Form:         f,
		Notification: failedNotification,
		Err:          err,
	}
}
