package models

// Query is the inbound chat event delivered by the bot platform
type Query struct {
	IsGroup          bool   `json:"isGroup"`
	Sender           string `json:"sender"`
	GroupParticipant string `json:"groupParticipant"`
	Message          string `json:"message"`
}

// WebhookRequest wraps the inbound event
type WebhookRequest struct {
	Query *Query `json:"query" binding:"required"`
}

// Reply is a single outbound bot message
type Reply struct {
	Message string `json:"message"`
}

// WebhookResponse is the outbound reply envelope
type WebhookResponse struct {
	Replies []Reply `json:"replies"`
}

// NewWebhookResponse builds a single-message reply envelope
func NewWebhookResponse(message string) WebhookResponse {
	return WebhookResponse{Replies: []Reply{{Message: message}}}
}
