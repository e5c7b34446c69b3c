// Package provider holds the neutral result types exchanged between
// external-model adapters and the services that consume them.
package provider

// LabelScore is one class probability from a text-classification model.
type LabelScore struct {
	Label string
	Score float64
}

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one prior turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// TextRequest is a prompt for a text generator. History holds earlier turns
// in order; Prompt is sent as the final user turn.
type TextRequest struct {
	System  string
	History []Message
	Prompt  string
}
