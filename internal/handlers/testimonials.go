package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"lumakin.dev/internal/middleware"
	"lumakin.dev/internal/models"
	"lumakin.dev/internal/pagination"
	"lumakin.dev/internal/services"
)

// TestimonialHandler handles testimonial endpoints
type TestimonialHandler struct {
	testimonialService *services.TestimonialService
	log                *zap.Logger
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(ts *services.TestimonialService, log *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: ts, log: log}
}

// ListTestimonials handles GET /api/testimonials?page=N
func (h *TestimonialHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	page := parseIntParam(r, "page", 0)
	respondJSON(w, r, http.StatusOK, h.testimonialService.Page(page))
}

// Stream handles GET /api/testimonials/stream. Each connection mounts its own
// carousel and receives a page event now and after every rotation. The
// carousel is unmounted when the client goes away. A carousel that cannot
// rotate ends the stream with a closed event.
func (h *TestimonialHandler) Stream(w http.ResponseWriter, r *http.Request) {
	c, err := h.testimonialService.NewCarousel(parseIntParam(r, "page", 0))
	if err != nil {
		respondError(w, r, HTTPStatus(err), "Failed to start carousel")
		return
	}
	defer c.Unmount()

	sse, err := NewSSEWriter(w)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	// Latest page wins: a slow client skips pages rather than blocking the ticker.
	updates := make(chan pagination.Snapshot[models.Testimonial], 1)
	unsubscribe := c.Subscribe(func(s pagination.Snapshot[models.Testimonial]) {
		for {
			select {
			case updates <- s:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	defer unsubscribe()

	ctx := r.Context()
	log := h.log.With(zap.String("request_id", middleware.GetRequestID(ctx)))

	if err := c.Mount(ctx); err != nil {
		log.Error("failed to mount carousel", zap.Error(err))
		_ = sse.Close(closedReason(err))
		return
	}

	if err := sse.WriteEvent(pageEvent, c.Snapshot()); err != nil {
		return
	}
	if !c.Running() {
		_ = sse.Close(closedEmpty)
		return
	}

	log.Debug("testimonial stream opened")
	defer log.Debug("testimonial stream closed")

	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-updates:
			if err := sse.WriteEvent(pageEvent, snap); err != nil {
				return
			}
		}
	}
}
