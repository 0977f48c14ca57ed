// Package emailjs is a client for the EmailJS REST API.
// It sends one templated email per call and reports failures as typed errors
// so callers can tell transport problems from rejected requests.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public EmailJS endpoint.
	DefaultBaseURL = "https://api.emailjs.com"

	sendPath = "/api/v1.0/email/send"

	// maxErrorBody caps how much of an error response is kept.
	maxErrorBody = 4 << 10
)

// ClientConfig contains configuration for the EmailJS client.
type ClientConfig struct {
	// BaseURL is the API origin, without a trailing slash.
	BaseURL string

	// Timeout bounds a single send, including reading the response.
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client

	// Logger for structured logging
	Logger *zap.Logger
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: DefaultBaseURL,
		Timeout: 15 * time.Second,
	}
}

// Client sends email through EmailJS.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new EmailJS client.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     config.Logger,
	}
}

// SendRequest is the body EmailJS expects. PublicKey travels as user_id.
type SendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	PublicKey      string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Response is EmailJS's acknowledgement of a sent email.
type Response struct {
	Status int
	Text   string
}

// Send issues exactly one request and returns once it settles.
func (c *Client) Send(ctx context.Context, req SendRequest) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("emailjs request failed",
			zap.String("service_id", req.ServiceID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	text := strings.TrimSpace(string(respBody))

	c.logger.Debug("emailjs response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode, Text: text}
	}

	return &Response{Status: resp.StatusCode, Text: text}, nil
}

// TransportError means the API could not be reached or the exchange broke off.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("emailjs: failed to fetch: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline rather than a refused
// or dropped connection.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// StatusError is a non-200 reply. Text is the response body, which EmailJS
// fills with a human-readable reason.
type StatusError struct {
	Status int
	Text   string
}

func (e *StatusError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("emailjs: status %d", e.Status)
	}
	return fmt.Sprintf("emailjs: status %d: %s", e.Status, e.Text)
}
