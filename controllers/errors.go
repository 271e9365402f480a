package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"immat-api/services"
	"immat-api/utils"
)

// respondError maps service errors to HTTP statuses. Anything unrecognised
// is attached to the context for ErrorHandler to log and answered with a
// generic 500 carrying fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var dateErr *services.InvalidDateError
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrMissingParameter):
		utils.SendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNoData):
		utils.SendError(c, http.StatusBadRequest, "No data provided")
	case errors.Is(err, services.ErrUnknownField):
		utils.SendError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &dateErr):
		utils.SendError(c, http.StatusBadRequest, dateErr.Error())
	case errors.As(err, &validationErr):
		utils.SendError(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
	default:
		_ = c.Error(fmt.Errorf("%s: %w", fallback, err))
		utils.SendInternalError(c, fallback)
	}
}
