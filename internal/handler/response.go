package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/medilab/lab-api/pkg/errors"
)

// Response is the error envelope. Successful responses carry the
// normalized document (or list) directly.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError translates a service error into an HTTP response.
// Application errors carry their own status and message; anything else
// is infrastructure failure, logged and reported generically so
// internal detail never leaves the boundary.
func RespondError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		}
		c.JSON(appErr.HTTPStatus(), NewErrorResponse(appErr.Message))
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}
