package contact

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultFormTTL is how long an untouched visitor form is kept.
const DefaultFormTTL = 30 * time.Minute

// Forms hands out one Form per visitor key (the client address, in the HTTP
// layer) so a visitor's in-flight submission blocks only that visitor.
type Forms struct {
	cfg    Config
	sender Sender
	logger *zap.Logger
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	forms     map[string]*formEntry
	lastSweep time.Time
}

type formEntry struct {
	form     *Form
	lastUsed time.Time
}

// NewForms creates an empty registry. A non-positive ttl selects DefaultFormTTL.
func NewForms(cfg Config, sender Sender, logger *zap.Logger, ttl time.Duration) *Forms {
	if ttl <= 0 {
		ttl = DefaultFormTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forms{
		cfg:    cfg,
		sender: sender,
		logger: logger,
		ttl:    ttl,
		now:    time.Now,
		forms:  make(map[string]*formEntry),
	}
}

// Get returns the form for key, creating it on first use.
func (r *Forms) Get(key string) *Form {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now, key)

	e, ok := r.forms[key]
	if !ok {
		e = &formEntry{form: NewForm(r.cfg, r.sender, r.logger)}
		r.forms[key] = e
	}
	e.lastUsed = now
	return e.form
}

// Lookup returns the form for key without creating one or refreshing its TTL.
func (r *Forms) Lookup(key string) (*Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.forms[key]
	if !ok {
		return nil, false
	}
	return e.form, true
}

// sweep drops forms idle for longer than the TTL, at most once per TTL.
// Submitting forms and keep are never dropped.
func (r *Forms) sweep(now time.Time, keep string) {
	if now.Sub(r.lastSweep) < r.ttl {
		return
	}
	r.lastSweep = now

	before := len(r.forms)
	for k, e := range r.forms {
		if k != keep && now.Sub(e.lastUsed) > r.ttl && e.form.State() != Submitting {
			delete(r.forms, k)
		}
	}
	if evicted := before - len(r.forms); evicted > 0 {
		r.logger.Debug("evicted idle contact forms",
			zap.Int("evicted", evicted),
			zap.Int("live", len(r.forms)))
	}
}

// Configured reports whether the send settings are complete.
func (r *Forms) Configured() bool {
	return r.cfg.Validate() == nil
}
