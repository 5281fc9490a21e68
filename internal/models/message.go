// ABOUTME: Message is one chat turn held in a study session
package models

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
