package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finverse/internal/domain"
)

// Response is the uniform envelope for all API responses. Success responses
// carry data (and for mutations a message); failures carry a message and,
// in development, an error detail.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// RespondMessage sends a 200 success response with a message.
func RespondMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// MapError translates domain errors to HTTP status codes and the
// client-facing message. The year bound is evaluated at request time.
func MapError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingFilingFields):
		return http.StatusBadRequest, "Missing required fields: ticker, formType, and year"
	case errors.Is(err, domain.ErrInvalidTicker):
		return http.StatusBadRequest, "Invalid ticker format. Must be 1-5 uppercase letters."
	case errors.Is(err, domain.ErrInvalidFormType):
		return http.StatusBadRequest, "Invalid form type. Must be one of: 10-K, 10-Q, 8-K"
	case errors.Is(err, domain.ErrInvalidYear):
		return http.StatusBadRequest, fmt.Sprintf("Invalid year. Must be between %d and %d", domain.MinFilingYear, time.Now().Year())
	case errors.Is(err, domain.ErrMissingPersonaFields):
		return http.StatusBadRequest, "Missing required fields: userId and persona"
	case errors.Is(err, domain.ErrMissingChatFields):
		return http.StatusBadRequest, "Missing required field: message"
	case errors.Is(err, domain.ErrPersonaNotFound):
		return http.StatusNotFound, "Persona not found"
	case errors.Is(err, domain.ErrProcessFailed), errors.Is(err, domain.ErrParseTimeout):
		return http.StatusInternalServerError, err.Error()
	case errors.Is(err, domain.ErrMalformedOutput):
		return http.StatusInternalServerError, "Error parsing SEC filing results"
	case errors.Is(err, domain.ErrChatNotConfigured):
		return http.StatusInternalServerError, "OpenRouter API key not configured"
	case errors.Is(err, domain.ErrChatUpstream):
		return http.StatusBadGateway, "Failed to process chat request"
	case errors.Is(err, domain.ErrInvalidExportFormat):
		return http.StatusBadRequest, "Invalid export format. Must be one of: csv, xlsx"
	case errors.Is(err, domain.ErrArchiveDisabled):
		return http.StatusNotFound, "Filing archive is not enabled"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// HandleError maps a domain error and sends the envelope. Server-side
// failures are logged with the request id; the raw error text is exposed in
// the error field only when includeDetail is set (development environment).
func HandleError(c *gin.Context, err error, includeDetail bool) {
	status, msg := MapError(err)
	if status >= http.StatusInternalServerError {
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] request failed: %v", requestID, err)
	}
	resp := Response{Success: false, Message: msg}
	if includeDetail && status >= http.StatusInternalServerError {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}
