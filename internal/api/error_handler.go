package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Akshit-MMQH/RakshaChain/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors, in taxonomy order: validation and conflict map to
	// 400 (the original contract never used 409), lookup misses to 404.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrDuplicateShipment):
		return http.StatusBadRequest, domain.ErrDuplicateShipment.Error()
	case errors.Is(err, domain.ErrMissingLocations):
		return http.StatusBadRequest, domain.ErrMissingLocations.Error()
	case errors.Is(err, domain.ErrShipmentNotFound):
		return http.StatusNotFound, domain.ErrShipmentNotFound.Error()
	case errors.Is(err, domain.ErrLocationNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrNoRoute):
		return http.StatusNotFound, domain.ErrNoRoute.Error()
	case errors.Is(err, domain.ErrStorage):
		log.Error().Err(err).Str("path", c.Path()).Msg("storage failure")
		return http.StatusInternalServerError, domain.ErrStorage.Error()
	}

	// Transport failures against external services keep the upstream status
	// and body in the message so the operator can see what went wrong.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		log.Error().Str("op", ue.Op).Int("upstream_status", ue.StatusCode).Msg("upstream call failed")
		return http.StatusInternalServerError, ue.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
