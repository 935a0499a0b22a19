package common

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/internal/enrich"
	"chuma.band/site/internal/store"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrNotFound returns a 404 Not Found error.
func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// ErrUnauthorized returns a 401 Unauthorized error.
func ErrUnauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

// ErrForbidden returns a 403 Forbidden error.
func ErrForbidden() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusForbidden, "admin access required")
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}

// FromStoreError translates the store's sentinel errors into HTTP errors.
func FromStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUnauthorized):
		return ErrForbidden()
	case errors.Is(err, store.ErrAccountSuspended):
		return echo.NewHTTPError(http.StatusUnauthorized, "This account has been suspended.")
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound("not found")
	case errors.Is(err, store.ErrInvalidInput):
		return ErrBadRequest(err.Error())
	default:
		return ErrInternal("internal error")
	}
}

// FromEnrichError translates metadata pipeline errors into HTTP errors.
func FromEnrichError(err error) error {
	var upstream *enrich.UpstreamError
	switch {
	case errors.Is(err, enrich.ErrInvalidURL):
		return ErrBadRequest(err.Error())
	case errors.Is(err, enrich.ErrNotFound):
		return ErrNotFound("no such video")
	case errors.As(err, &upstream):
		return echo.NewHTTPError(http.StatusBadGateway, upstream.Message)
	default:
		return ErrInternal("metadata lookup failed")
	}
}
