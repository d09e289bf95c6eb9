package http

import (
	"github.com/gin-gonic/gin"
)

// processAskReq binds and validates the initial-turn request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFollowUpReq binds and validates the follow-up request body.
func (h *handler) processFollowUpReq(c *gin.Context) (followUpReq, error) {
	var req followUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
