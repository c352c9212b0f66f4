// Package relay forwards contact submissions to a third-party form relay
// (a Formspree-style endpoint that emails the message on).
package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/givers/contacts/internal/model"
)

// SubmissionHeader carries a unique id for each forwarded submission.
const SubmissionHeader = "X-Submission-Id"

// StatusError is returned when the relay answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("relay: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client posts form submissions to the relay endpoint.
type Client struct {
	endpoint string
	subject  string
	http     *http.Client
}

// NewClient creates a Client for endpoint. subject, when set, is sent as the
// relay's _subject field.
func NewClient(endpoint, subject string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		subject:  subject,
		http:     &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the relay URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Encode returns the form body the relay expects.
func (c *Client) Encode(fields model.ContactFields) url.Values {
	form := url.Values{}
	form.Set("name", fields.Name)
	form.Set("email", fields.Email)
	form.Set("phone", fields.Phone)
	form.Set("message", fields.Message)
	form.Set("_replyto", fields.Email)
	if c.subject != "" {
		form.Set("_subject", c.subject)
	}
	return form
}

// Forward posts fields to the relay and returns the submission id it sent.
func (c *Client) Forward(ctx context.Context, fields model.ContactFields) (string, error) {
	id := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(c.Encode(fields).Encode()))
	if err != nil {
		return "", fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(SubmissionHeader, id)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return id, nil
}
