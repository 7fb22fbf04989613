package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/auth"
	"bgcatalog/backend/internal/repository"
	"bgcatalog/backend/internal/validation"
)

const (
	msgInvalidParams = "Invalid parameters"
	msgInvalidQuery  = "Invalid query parameters"
	msgInvalidJSON   = "Invalid JSON in request body"
	msgInvalidBody   = "Invalid request body"
	msgInternal      = "Internal Server Error"
)

// ErrorResponse represents an error reply. Details is set for validation
// failures only.
type ErrorResponse struct {
	Error   string                  `json:"error" example:"Game not found"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// errorMessages are the client-facing texts for domain errors of one resource.
type errorMessages struct {
	notFound string
	conflict string
}

// validator is implemented by request bodies with cross-field rules.
type validator interface {
	Validate() error
}

func abortBadRequest(c *gin.Context, msg string, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msg, Details: validation.Details(err)})
}

func bindURI(c *gin.Context, obj any) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		abortBadRequest(c, msgInvalidParams, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		abortBadRequest(c, msgInvalidQuery, err)
		return false
	}
	return true
}

// bindBody decodes and validates a JSON body. A body that is not JSON at all
// is reported apart from one with missing or wrong fields.
func bindBody(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		msg := msgInvalidBody
		if validation.IsMalformedJSON(err) {
			msg = msgInvalidJSON
		}
		abortBadRequest(c, msg, err)
		return false
	}
	if v, ok := obj.(validator); ok {
		if err := v.Validate(); err != nil {
			abortBadRequest(c, msgInvalidBody, err)
			return false
		}
	}
	return true
}

// respondError maps a store error onto a response. Wrong-owner and missing
// rows are both reported as not found.
func respondError(c *gin.Context, log zerolog.Logger, err error, msgs errorMessages) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrForbidden):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgs.notFound})
	case errors.Is(err, repository.ErrUnknownReference):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   msgInvalidBody,
			Details: []validation.FieldError{{Field: referenceField(err), Message: "contains an id that does not exist"}},
		})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: msgs.conflict})
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("trace_id", c.GetString("trace_id")).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	}
}

// referenceField guesses the request field from the violated constraint name.
func referenceField(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "mechanic"):
		return "mechanicIds"
	case strings.Contains(msg, "categor"):
		return "categoryIds"
	case strings.Contains(msg, "game"):
		return "gameId"
	default:
		return ""
	}
}

// callerID returns the caller resolved by the bearer middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.CallerID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: auth.MsgUnauthorized})
	}
	return id, ok
}
