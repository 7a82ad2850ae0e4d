package model

const (
	TextResponseType = "text"

	// DelayTrigger marks a chat message that asks for a deferred reply.
	DelayTrigger = "/delay"

	EchoResponseFormat = "Echo: %s (Mock Response)"

	ProcessingMessage   = "Got it. I will get back to you shortly."
	DelayedReplyMessage = "Done! Your delayed reply is ready."
)
