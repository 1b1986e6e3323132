package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatbot-nlp-service/internal/chat"
	"chatbot-nlp-service/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Unrecognized
// errors become an opaque 500; the detail stays in the server log.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrInvalidLimit):
		response.BadRequest(c, err)
	default:
		response.InternalError(c)
	}
}
