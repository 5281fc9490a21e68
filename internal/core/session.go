// ABOUTME: Session holds per-user study state: the loaded content and the chat history
// ABOUTME: Never persisted; owned by whichever surface is serving the user
package core

import (
	"slices"
	"sync"

	"github.com/harper/momprep/internal/models"
)

// Session is the ephemeral context of one user session
type Session struct {
	mu             sync.Mutex
	topic          string
	currentContent string
	history        []models.Message
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// SetCurrentContent records the content later chat turns are grounded on
func (s *Session) SetCurrentContent(topic, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = topic
	s.currentContent = content
}

// CurrentContent returns the loaded topic and content; both are empty when nothing is loaded
func (s *Session) CurrentContent() (topic, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic, s.currentContent
}

// Append adds a chat turn to the history
func (s *Session) Append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, models.Message{Role: role, Content: content})
}

// History returns a copy of the chat history in arrival order
func (s *Session) History() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

// Reset clears loaded content and history
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = ""
	s.currentContent = ""
	s.history = nil
}
