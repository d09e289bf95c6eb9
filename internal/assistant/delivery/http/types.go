package http

import (
	"marketplace-assistant/internal/assistant"
	"marketplace-assistant/internal/model"
)

type callerProfile struct {
	UserID          string `json:"user_id"`
	Location        string `json:"location"`
	ServiceCategory string `json:"service_category"`
}

type askReq struct {
	Utterance     string        `json:"utterance" binding:"required"`
	CallerRole    string        `json:"caller_role" binding:"required"`
	CallerProfile callerProfile `json:"caller_profile"`
}

func (r askReq) validate() error {
	if !model.Role(r.CallerRole).Valid() {
		return errInvalidRole
	}
	return nil
}

func (r askReq) toInput() assistant.AskInput {
	return assistant.AskInput{
		Utterance: r.Utterance,
		Profile:   r.CallerProfile.toProfile(model.Role(r.CallerRole)),
	}
}

type followUpReq struct {
	OriginalUtterance string `json:"original_utterance"`
	ReplyText         string `json:"reply_text" binding:"required"`
	// Context is deliberately not a binding requirement: a missing or
	// nil bag is handed to the engine, which answers with the restart
	// message instead of a bind error.
	Context       *assistant.ConversationContext `json:"context"`
	CallerRole    string                         `json:"caller_role" binding:"required"`
	CallerProfile callerProfile                  `json:"caller_profile"`
}

func (r followUpReq) validate() error {
	if !model.Role(r.CallerRole).Valid() {
		return errInvalidRole
	}
	return nil
}

func (r followUpReq) toInput() assistant.ResumeInput {
	return assistant.ResumeInput{
		OriginalUtterance: r.OriginalUtterance,
		ReplyText:         r.ReplyText,
		Context:           r.Context,
		Profile:           r.CallerProfile.toProfile(model.Role(r.CallerRole)),
	}
}

func (p callerProfile) toProfile(role model.Role) model.UserProfile {
	userID := p.UserID
	if userID == "" {
		userID = "anonymous"
	}
	return model.UserProfile{
		UserID:          userID,
		Role:            role,
		Location:        p.Location,
		ServiceCategory: p.ServiceCategory,
	}
}

func (r askReq) scope() model.Scope {
	return model.Scope{UserID: r.CallerProfile.UserID}
}

func (r followUpReq) scope() model.Scope {
	return model.Scope{UserID: r.CallerProfile.UserID}
}
