package handlers

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"go.uber.org/zap"

	"lumakin.dev/internal/config"
	"lumakin.dev/internal/contact"
	"lumakin.dev/internal/middleware"
	"lumakin.dev/internal/shell"
	"lumakin.dev/internal/views"
)

// PageHandler renders the site
type PageHandler struct {
	renderer *views.Renderer
	svc      *Services
	forms    *contact.Forms
	proxies  *middleware.Proxies
	theme    config.Theme
	interval time.Duration
	log      *zap.Logger
}

// NewPageHandler creates a PageHandler over svc. Without WithForms it can
// only Build pages.
func NewPageHandler(svc *Services, site *config.SiteConfig, renderer *views.Renderer, log *zap.Logger) *PageHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PageHandler{
		renderer: renderer,
		svc:      svc,
		theme:    site.Theme,
		interval: site.CarouselInterval,
		log:      log,
	}
}

// WithForms attaches the contact forms, keyed by the client address proxies
// resolve.
func (h *PageHandler) WithForms(forms *contact.Forms, proxies *middleware.Proxies) *PageHandler {
	h.forms = forms
	h.proxies = proxies
	return h
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var cv views.ContactView
	if h.forms == nil {
		h.render(w, r, http.StatusOK, cv)
		return
	}
	if form, ok := h.forms.Lookup(h.proxies.ClientIP(r)); ok && form.State() == contact.Submitting {
		cv = views.ContactView{Fields: form.Fields(), Status: contact.Status{State: contact.Submitting}}
	}
	h.render(w, r, http.StatusOK, cv)
}

// Contact handles POST /contact, the no-script form submission. The page is
// rendered again with the outcome; fields are kept after a failure.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}
	fields := contact.Fields{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	form := h.forms.Get(h.proxies.ClientIP(r))
	st, err := form.Submit(r.Context(), fields)
	if errors.Is(err, contact.ErrSubmitInProgress) {
		h.render(w, r, HTTPStatus(err), views.ContactView{
			Fields: fields,
			Status: contact.Status{State: contact.Submitting},
		})
		return
	}

	h.render(w, r, statusForContact(st), views.ContactView{Fields: form.Fields(), Status: st})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, cv views.ContactView) {
	page := h.Build(views.ParseQuery(r.URL.Query()), cv)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, page); err != nil {
		h.log.Error("failed to render page",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
	}
}

// Build assembles the page for q, clamping page numbers so generated links
// stay in range.
func (h *PageHandler) Build(q views.Query, cv views.ContactView) *views.Page {
	tracker := shell.NewTracker()
	defer tracker.Close()
	menu := shell.NewMenu(tracker)

	if isSection(q.Section) {
		menu.ScrollTo(q.Section)
	} else {
		q.Section = ""
	}
	if q.MenuOpen {
		menu.Toggle()
	}

	accolades := h.svc.Accolades.Page(q.AccoladesPage)
	testimonials := h.svc.Testimonials.Page(q.TestimonialsPage)
	q.AccoladesPage = accolades.Page
	q.TestimonialsPage = testimonials.Page
	q.MenuOpen = menu.Open()

	return &views.Page{
		Profile:          h.svc.Profile.Profile(),
		Nav:              views.BuildNav(tracker.Active()),
		MenuOpen:         menu.Open(),
		Query:            q,
		Projects:         h.svc.Projects.GetAll(),
		Accolades:        accolades,
		Affiliations:     h.svc.Profile.Affiliations(),
		Testimonials:     testimonials,
		Contact:          cv,
		Theme:            h.theme,
		CarouselInterval: int(h.interval.Milliseconds()),
	}
}

func isSection(id string) bool {
	return slices.ContainsFunc(shell.NavItems(), func(item shell.NavItem) bool {
		return item.ID == id
	})
}
