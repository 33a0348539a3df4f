package chat

import (
	"time"

	"estates/internal/model"

	"github.com/google/uuid"
)

// State is the conversation-level state of one chat session.
type State int

const (
	StateIdle State = iota
	StateAwaitingFirstOpen
	StateOpenNoMessages
	StateOpenConversing
	StateHandoffPending
)

// Session holds the append-only history of one visitor conversation.
// Nothing is persisted across sessions; the caller owns the lifetime.
// Session itself is not synchronized, callers serialise access.
type Session struct {
	state     State
	history   []model.ChatMessage
	responder *Responder
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{
		state:     StateIdle,
		responder: NewResponder(),
	}
}

// State returns the current conversation state.
func (s *Session) State() State {
	return s.state
}

// History returns a copy of the session's message history.
func (s *Session) History() []model.ChatMessage {
	out := make([]model.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Open moves an idle session through the first-open transition and
// seeds the welcome message with the fixed initial suggestion set.
// Opening an already-open session is a no-op and returns the existing
// welcome message.
func (s *Session) Open() model.ChatMessage {
	if s.state != StateIdle && s.state != StateAwaitingFirstOpen {
		return s.history[0]
	}
	s.state = StateAwaitingFirstOpen

	welcome := model.ChatMessage{
		ID:     uuid.NewString(),
		Sender: model.SenderBot,
		Text: "Hello! I'm your property assistant. I can show you our latest listings, " +
			"search by budget or area, or put you in touch with an agent.",
		Timestamp:        time.Now(),
		SuggestedReplies: append([]string(nil), InitialSuggestions...),
	}
	s.history = append(s.history, welcome)
	s.state = StateOpenNoMessages
	return welcome
}

// HandleInput appends the user message, classifies it against the
// catalog snapshot and appends the bot reply. A handoff match parks the
// session in StateHandoffPending until the capture form is resolved.
func (s *Session) HandleInput(text string, catalog []model.Property) model.ChatMessage {
	if s.state == StateIdle || s.state == StateAwaitingFirstOpen {
		s.Open()
	}

	s.history = append(s.history, model.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    model.SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	})
	s.state = StateOpenConversing

	reply := s.responder.Respond(text, catalog)

	msg := model.ChatMessage{
		ID:               uuid.NewString(),
		Sender:           model.SenderBot,
		Text:             reply.Text,
		Timestamp:        time.Now(),
		Properties:       reply.Properties,
		SuggestedReplies: SuggestedReplies(reply),
		RequestHandoff:   reply.RequestHandoff,
	}
	s.history = append(s.history, msg)

	if reply.RequestHandoff {
		s.state = StateHandoffPending
	}
	return msg
}

// ResolveHandoff returns the session to conversing once the capture
// form was submitted or cancelled. The already-appended history is
// never rolled back, regardless of whether the submission succeeded.
func (s *Session) ResolveHandoff() {
	if s.state == StateHandoffPending {
		s.state = StateOpenConversing
	}
}
