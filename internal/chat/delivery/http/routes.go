package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-nlp-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Message
// submission is rate limited per client IP; history reads are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/messages", mw.RateLimit(), h.SendMessage)
		chatGroup.GET("/history", h.History)
	}
}
