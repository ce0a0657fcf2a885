package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockdir/api"
	"stockdir/services"
)

// respondServiceErr maps the services failure taxonomy onto HTTP statuses.
// Provider faults and incomplete provider data both read as a bad gateway:
// the caller did nothing wrong and may retry later.
func respondServiceErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		api.ResultError(c, http.StatusBadRequest, []string{err.Error()})
	case errors.Is(err, services.ErrNotFound):
		api.ResultError(c, http.StatusNotFound, []string{err.Error()})
	case errors.Is(err, services.ErrConflict):
		api.ResultError(c, http.StatusConflict, []string{err.Error()})
	case errors.Is(err, services.ErrUpstreamFailure), errors.Is(err, services.ErrInvalidSnapshot):
		api.ResultError(c, http.StatusBadGateway, []string{err.Error()})
	default:
		api.ResultError(c, http.StatusInternalServerError, nil)
	}
}
