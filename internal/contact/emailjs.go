package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
)

// DefaultEmailJSEndpoint is the public EmailJS REST API.
const DefaultEmailJSEndpoint = "https://api.emailjs.com"

const emailJSSendPath = "/api/v1.0/email/send"

// EmailJSConfig carries the deployment identifiers for EmailJS.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	// AccessToken is the account's private key. EmailJS requires it for
	// requests that do not come from a browser when strict mode is enabled.
	AccessToken string
	Timeout     time.Duration
}

// Configured reports whether the three identifiers are present.
func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Payload `json:"template_params"`
	AccessToken    string  `json:"accessToken,omitempty"`
}

// EmailJS sends payloads through the EmailJS REST API.
type EmailJS struct {
	cfg    EmailJSConfig
	client fastshot.ClientHttpMethods
}

// NewEmailJS builds a sender for the given account.
func NewEmailJS(cfg EmailJSConfig) *EmailJS {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := fastshot.NewClient(strings.TrimSuffix(cfg.Endpoint, "/")).
		Config().SetTimeout(cfg.Timeout).
		Header().Add("Content-Type", "application/json").
		Build()

	return &EmailJS{cfg: cfg, client: c}
}

// Send posts the payload with the service, template and public key. A 2xx
// response is success and its body is the receipt; anything else is a
// failure carrying the body text.
func (e *EmailJS) Send(ctx context.Context, p Payload) (Receipt, error) {
	if !e.cfg.Configured() {
		return Receipt{}, ErrNotConfigured
	}

	req := emailJSRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     e.cfg.TemplateID,
		UserID:         e.cfg.PublicKey,
		TemplateParams: p,
		AccessToken:    e.cfg.AccessToken,
	}

	resp, err := e.client.
		POST(emailJSSendPath).
		Context().Set(ctx).
		Body().AsJSON(req).
		Send()
	if err != nil {
		return Receipt{}, fmt.Errorf("sending to emailjs: %w", err)
	}
	defer resp.Body().Close()

	text, err := resp.Body().AsString()
	if err != nil {
		return Receipt{}, fmt.Errorf("reading emailjs response: %w", err)
	}

	if resp.Status().IsError() {
		msg := strings.TrimSpace(text)
		if msg == "" {
			msg = "empty response"
		}
		return Receipt{}, errors.New("emailjs: " + msg)
	}

	return Receipt{Text: strings.TrimSpace(text)}, nil
}
