package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lumakin.dev/internal/carousel"
	"lumakin.dev/internal/config"
	"lumakin.dev/internal/contact"
	"lumakin.dev/internal/emailjs"
	"lumakin.dev/internal/middleware"
	"lumakin.dev/internal/services"
	"lumakin.dev/internal/views"
)

// Options carries the collaborators SetupRoutes does not build from cfg.
type Options struct {
	Logger *zap.Logger
	// Sender overrides the EmailJS client.
	Sender contact.Sender
	// CarouselOptions apply to every streamed testimonial carousel.
	CarouselOptions []carousel.Option
}

// Services are the content services shared by the JSON API and the page.
type Services struct {
	Projects     *services.ProjectService
	Profile      *services.ProfileService
	Accolades    *services.AccoladeService
	Testimonials *services.TestimonialService
}

// NewServices builds the content services over cfg's tables. carouselOpts
// apply to every testimonial carousel.
func NewServices(cfg *config.Config, carouselOpts ...carousel.Option) (*Services, error) {
	store := cfg.Content
	accolades, err := services.NewAccoladeService(store.Accolades, cfg.Site.AccoladesPerPage)
	if err != nil {
		return nil, err
	}
	testimonials, err := services.NewTestimonialService(store.Testimonials, cfg.Site.TestimonialsPerPage, carouselOpts...)
	if err != nil {
		return nil, err
	}
	return &Services{
		Projects:     services.NewProjectService(store.Projects),
		Profile:      services.NewProfileService(store.Profile, store.Affiliations),
		Accolades:    accolades,
		Testimonials: testimonials,
	}, nil
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	proxies, err := middleware.ParseProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	sender := opts.Sender
	if sender == nil {
		sender = emailjs.NewClient(emailjs.ClientConfig{
			BaseURL: cfg.EmailJS.BaseURL,
			Timeout: cfg.EmailJS.Timeout,
			Logger:  log.Named("emailjs"),
		})
	}

	// Initialize services
	carouselOpts := append([]carousel.Option{
		carousel.WithInterval(cfg.Site.CarouselInterval),
		carousel.WithLogger(log.Named("carousel")),
	}, opts.CarouselOptions...)
	svc, err := NewServices(cfg, carouselOpts...)
	if err != nil {
		return nil, err
	}

	renderer, err := views.New()
	if err != nil {
		return nil, err
	}
	forms := contact.NewForms(cfg.ContactConfig(), sender, log.Named("contact"), contact.DefaultFormTTL)
	if !forms.Configured() {
		log.Warn("EmailJS is not configured; contact submissions will fail until it is")
	}

	// Initialize handlers
	projectHandler := NewProjectHandler(svc.Projects)
	profileHandler := NewProfileHandler(svc.Profile)
	accoladeHandler := NewAccoladeHandler(svc.Accolades)
	testimonialHandler := NewTestimonialHandler(svc.Testimonials, log)
	navHandler := NewNavHandler()
	contactHandler := NewContactHandler(forms, proxies)
	pageHandler := NewPageHandler(svc, cfg.Site, renderer, log.Named("page")).
		WithForms(forms, proxies)

	limiter := middleware.NewRateLimiter(cfg.Contact.PerMinute, cfg.Contact.Burst).
		TrustProxies(proxies)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log.Named("http")))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", profileHandler.GetProfile)
		r.Get("/affiliations", profileHandler.ListAffiliations)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)

		r.Get("/accolades", accoladeHandler.ListAccolades)

		r.Get("/testimonials", testimonialHandler.ListTestimonials)
		r.Get("/testimonials/stream", testimonialHandler.Stream)

		r.Post("/nav/active", navHandler.Active)

		r.With(limiter.Middleware).Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	r.Handle("/logos/*", fileServer)

	r.Get("/", pageHandler.Index)
	r.With(limiter.Middleware).Post("/contact", pageHandler.Contact)

	return r, nil
}

// respondJSON writes a JSON response. Encoding failures go to the request logger.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		middleware.LoggerFrom(r.Context()).Error("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
