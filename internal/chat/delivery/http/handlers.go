package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-nlp-service/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Routes an utterance through the understanding pipeline and returns the bot reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "User message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the most recent user utterances in arrival order.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       limit query int false "Max entries to return (0 = all)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
