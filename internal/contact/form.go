// Package contact turns a contact form submission into one outbound email and
// the outcome into a status message for the visitor.
//
// A Form moves Idle → Submitting → Success|Failed and starts over from Idle on
// the next attempt. Every failure is caught here and becomes a Failed status;
// nothing propagates to the caller except ErrSubmitInProgress.
package contact

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumakin.dev/internal/emailjs"
)

// User-facing messages.
const (
	DefaultSubject   = "New message from portfolio contact form"
	MsgSuccess       = "Message sent successfully! I'll get back to you soon."
	MsgNotConfigured = "Contact form is not properly configured. Please contact me directly at "
	MsgNetwork       = "Network error. Please check your internet connection."
	MsgTemplate      = "Invalid email template configuration."
	MsgGeneric       = "Sorry, something went wrong. "
)

// validate caches struct metadata, so every Form shares it.
var validate = validator.New()

// State is where a Form is in its submission cycle.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText lets State appear by name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Fields are the values the visitor typed. Subject may be blank.
type Fields struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Config holds the EmailJS identifiers plus the address shown when sending
// cannot work.
type Config struct {
	ServiceID     string
	TemplateID    string
	PublicKey     string
	PrivateKey    string
	FallbackEmail string
}

// Validate reports every missing send setting as a *ConfigError.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ServiceID) == "" {
		missing = append(missing, "service ID")
	}
	if strings.TrimSpace(c.TemplateID) == "" {
		missing = append(missing, "template ID")
	}
	if strings.TrimSpace(c.PublicKey) == "" {
		missing = append(missing, "public key")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// Sender delivers one email. *emailjs.Client implements it.
type Sender interface {
	Send(ctx context.Context, req emailjs.SendRequest) (*emailjs.Response, error)
}

// Status is what the visitor sees after a submission.
type Status struct {
	State   State  `json:"state"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
	Err     error  `json:"-"`
}

// Form is one visitor's contact form. It refuses a second submission while
// the first is in flight, the way a disabled submit button would.
type Form struct {
	cfg    Config
	sender Sender
	logger *zap.Logger

	mu     sync.Mutex
	state  State
	fields Fields
	status Status
}

// NewForm creates an idle form.
func NewForm(cfg Config, sender Sender, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{
		cfg:    cfg,
		sender: sender,
		logger: logger,
	}
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Status returns the outcome of the last settled submission.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Fields returns the values currently held by the form. They are cleared
// after a successful send and kept after a failure so the visitor can retry.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit sends fields and blocks until the outbound call settles. The only
// error it returns is ErrSubmitInProgress; every other failure is reported
// through the returned Status.
func (f *Form) Submit(ctx context.Context, fields Fields) (Status, error) {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return Status{State: Submitting}, ErrSubmitInProgress
	}
	f.state = Submitting
	f.status = Status{State: Submitting}
	f.fields = fields
	f.mu.Unlock()

	id := uuid.New()
	log := f.logger.With(zap.String("submission_id", id.String()))

	err := f.send(ctx, fields, log)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Failed
		f.status = f.failure(err)
		logFields := []zap.Field{zap.String("kind", string(f.status.Kind)), zap.Error(err)}
		var transportErr *emailjs.TransportError
		if errors.As(err, &transportErr) {
			logFields = append(logFields, zap.Bool("timeout", transportErr.Timeout()))
		}
		log.Warn("contact submission failed", logFields...)
		return f.status, nil
	}

	f.state = Success
	f.status = Status{State: Success, Success: true, Message: MsgSuccess}
	f.fields = Fields{}
	log.Info("contact submission sent")
	return f.status, nil
}

func (f *Form) send(ctx context.Context, fields Fields, log *zap.Logger) error {
	if err := f.cfg.Validate(); err != nil {
		return err
	}

	fields = normalize(fields)
	if err := validate.Struct(fields); err != nil {
		return validationError(err)
	}

	params := TemplateParams(fields)
	log.Info("sending contact email",
		zap.String("from_name", params["from_name"]),
		zap.String("from_email", params["from_email"]),
		zap.String("subject", params["subject"]))

	_, err := f.sender.Send(ctx, emailjs.SendRequest{
		ServiceID:      f.cfg.ServiceID,
		TemplateID:     f.cfg.TemplateID,
		PublicKey:      f.cfg.PublicKey,
		AccessToken:    f.cfg.PrivateKey,
		TemplateParams: params,
	})
	return Classify(err)
}

func (f *Form) failure(err error) Status {
	st := Status{State: Failed, Kind: KindOf(err), Err: err}

	var (
		sendErr *SendError
		valErr  *ValidationError
	)
	switch st.Kind {
	case KindConfiguration:
		st.Message = MsgNotConfigured + f.cfg.FallbackEmail
	case KindValidation:
		errors.As(err, &valErr)
		st.Message = validationMessage(valErr)
	case KindNetwork:
		st.Message = MsgNetwork
	case KindTemplate:
		st.Message = MsgTemplate
	default:
		detail := err.Error()
		if errors.As(err, &sendErr) {
			detail = sendErr.Detail
		}
		st.Message = MsgGeneric + detail
	}
	return st
}

// TemplateParams builds the EmailJS template parameters, substituting
// DefaultSubject for a blank subject.
func TemplateParams(fields Fields) map[string]string {
	subject := fields.Subject
	if strings.TrimSpace(subject) == "" {
		subject = DefaultSubject
	}
	return map[string]string{
		"from_name":  fields.Name,
		"from_email": fields.Email,
		"subject":    subject,
		"message":    fields.Message,
	}
}

func normalize(fields Fields) Fields {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.Email = strings.TrimSpace(fields.Email)
	fields.Subject = strings.TrimSpace(fields.Subject)
	return fields
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
	}
	return &ValidationError{Field: "form", Tag: "invalid"}
}

func validationMessage(err *ValidationError) string {
	if err == nil {
		return "Please check the form and try again."
	}
	switch {
	case err.Field == "Email" && err.Tag == "email":
		return "Please enter a valid email address."
	case err.Field == "Name":
		return "Please enter your name."
	case err.Field == "Email":
		return "Please enter your email address."
	case err.Field == "Message":
		return "Please enter a message."
	default:
		return "Please check the form and try again."
	}
}
