package http

import (
	"github.com/gin-gonic/gin"

	"marketplace-assistant/pkg/response"
)

// Ask godoc
// @Summary     Ask the assistant
// @Description Handles the initial turn of an exchange: classifies the utterance and either answers or pauses with a follow-up request plus a context bag.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Utterance with caller role and profile"
// @Success     200  {object} envelopeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	env := h.uc.Ask(ctx, req.scope(), req.toInput())
	response.OK(c, newEnvelopeResp(env))
}

// FollowUp godoc
// @Summary     Resume a paused exchange
// @Description Continues a paused dialogue using the context bag and follow-up token emitted by a previous response. The reply is dispatched by token; it is not classified as a fresh question.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body followUpReq true "Reply with the round-tripped context bag"
// @Success     200  {object} envelopeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/follow-up [POST]
func (h *handler) FollowUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFollowUpReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	env := h.uc.Resume(ctx, req.scope(), req.toInput())
	response.OK(c, newEnvelopeResp(env))
}
