package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"lumakin.dev/internal/carousel"
)

// SSE event names used by the testimonial stream.
const (
	pageEvent   = "page"
	closedEvent = "closed"
)

// Reasons carried by a closed event.
const (
	closedEmpty    = "empty"
	closedDisposed = "disposed"
	closedFailed   = "failed"
)

// SSEWriter writes Server-Sent Events to a flushing response.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter sends the stream headers. It fails when w cannot flush.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends one event with data encoded as JSON.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Close tells the browser the stream ended on purpose, so it stops
// reconnecting and keeps the page it has.
func (s *SSEWriter) Close(reason string) error {
	return s.WriteEvent(closedEvent, map[string]string{"reason": reason})
}

// closedReason maps a mount failure to the reason sent with the closed event.
func closedReason(err error) string {
	if errors.Is(err, carousel.ErrDisposed) {
		return closedDisposed
	}
	return closedFailed
}
