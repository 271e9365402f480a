package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
	Count   *int   `json:"count,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// SendInternalError hides the cause from the client; callers log it.
func SendInternalError(c *gin.Context, err string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   err,
		Message: "An unexpected error occurred",
		Code:    http.StatusInternalServerError,
	})
}

func SendSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

func SendCreated(c *gin.Context, message string, count int) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Count:   &count,
	})
}
