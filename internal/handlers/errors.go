package handlers

import (
	"errors"
	"net/http"

	"lumakin.dev/internal/carousel"
	"lumakin.dev/internal/contact"
	"lumakin.dev/internal/pagination"
	"lumakin.dev/internal/services"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		valErr *contact.ValidationError
		cfgErr *contact.ConfigError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, contact.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.As(err, &valErr), errors.Is(err, pagination.ErrInvalidPerPage):
		return http.StatusBadRequest
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, carousel.ErrDisposed):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// statusForContact maps a settled submission to a response code. Failed
// submissions still carry a message for the visitor.
func statusForContact(st contact.Status) int {
	switch st.Kind {
	case contact.KindNone:
		return http.StatusOK
	case contact.KindValidation:
		return http.StatusUnprocessableEntity
	case contact.KindConfiguration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
