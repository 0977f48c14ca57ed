package contact

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"lumakin.dev/internal/emailjs"
)

// ErrSubmitInProgress is returned when a form is submitted again before the
// previous submission settled.
var ErrSubmitInProgress = errors.New("contact: submission already in progress")

// Kind classifies a failed submission for the user-facing message.
type Kind string

const (
	KindNone          Kind = ""
	KindConfiguration Kind = "configuration"
	KindValidation    Kind = "validation"
	KindNetwork       Kind = "network"
	KindTemplate      Kind = "template"
	KindGeneric       Kind = "generic"
)

// ConfigError lists the send settings that are missing. It is not retryable
// without an operator fixing the deployment.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("contact form is not configured: missing %s", strings.Join(e.Missing, ", "))
}

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Tag)
}

// NetworkError means the mail API could not be reached. The user may retry.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// TemplateError means the mail API rejected the service or template IDs.
type TemplateError struct {
	Err error
}

func (e *TemplateError) Error() string { return "invalid template configuration: " + e.Err.Error() }
func (e *TemplateError) Unwrap() error { return e.Err }

// SendError is any other failure; Detail is the text shown to the user.
type SendError struct {
	Detail string
	Err    error
}

func (e *SendError) Error() string { return "send failed: " + e.Err.Error() }
func (e *SendError) Unwrap() error { return e.Err }

// Classify maps a send failure onto NetworkError, TemplateError or SendError.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var (
		netErr       *NetworkError
		tmplErr      *TemplateError
		sendErr      *SendError
		transportErr *emailjs.TransportError
		statusErr    *emailjs.StatusError
		opErr        net.Error
	)
	switch {
	case errors.As(err, &netErr), errors.As(err, &tmplErr), errors.As(err, &sendErr):
		return err
	case errors.As(err, &transportErr),
		errors.As(err, &opErr),
		errors.Is(err, context.DeadlineExceeded),
		strings.Contains(err.Error(), "Failed to fetch"):
		return &NetworkError{Err: err}
	}

	detail := err.Error()
	if errors.As(err, &statusErr) && statusErr.Text != "" {
		detail = statusErr.Text
	}
	if isTemplateRejection(detail) {
		return &TemplateError{Err: err}
	}
	return &SendError{Detail: detail, Err: err}
}

// KindOf returns the classification of an error produced by this package.
func KindOf(err error) Kind {
	var (
		cfgErr  *ConfigError
		valErr  *ValidationError
		netErr  *NetworkError
		tmplErr *TemplateError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &valErr):
		return KindValidation
	case errors.As(err, &netErr):
		return KindNetwork
	case errors.As(err, &tmplErr):
		return KindTemplate
	default:
		return KindGeneric
	}
}

// isTemplateRejection matches EmailJS's wording for bad service or template
// IDs ("The template ID is invalid", "Invalid template", "The service ID is invalid").
func isTemplateRejection(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "invalid template") {
		return true
	}
	return (strings.Contains(lower, "template id") || strings.Contains(lower, "service id")) &&
		strings.Contains(lower, "invalid")
}
