package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_OpenSeedsWelcome(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.History())

	welcome := s.Open()

	assert.Equal(t, StateOpenNoMessages, s.State())
	assert.NotEmpty(t, welcome.ID)
	assert.Equal(t, "bot", welcome.Sender)
	assert.Equal(t, InitialSuggestions, welcome.SuggestedReplies)

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, welcome.ID, history[0].ID)
}

func TestSession_OpenTwiceIsNoop(t *testing.T) {
	s := NewSession()
	first := s.Open()
	second := s.Open()

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.History(), 1)
	assert.Equal(t, StateOpenNoMessages, s.State())
}

func TestSession_HandleInputAppendsUserAndBot(t *testing.T) {
	s := NewSession()
	s.Open()

	reply := s.HandleInput("show me the latest listings", testCatalog())

	assert.Equal(t, StateOpenConversing, s.State())
	assert.Equal(t, "bot", reply.Sender)
	assert.NotEmpty(t, reply.Properties)

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, "user", history[1].Sender)
	assert.Equal(t, "show me the latest listings", history[1].Text)
	assert.Equal(t, reply.ID, history[2].ID)
}

func TestSession_HandleInputAutoOpens(t *testing.T) {
	s := NewSession()

	s.HandleInput("hello", nil)

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, "bot", history[0].Sender)
	assert.Equal(t, InitialSuggestions, history[0].SuggestedReplies)
	assert.Equal(t, StateOpenConversing, s.State())
}

func TestSession_HandoffLifecycle(t *testing.T) {
	s := NewSession()
	s.Open()

	reply := s.HandleInput("connect me to an agent please", nil)
	assert.True(t, reply.RequestHandoff)
	assert.Equal(t, StateHandoffPending, s.State())
	grew := len(s.History())

	s.ResolveHandoff()
	assert.Equal(t, StateOpenConversing, s.State())
	assert.Len(t, s.History(), grew)

	// resolving again is harmless
	s.ResolveHandoff()
	assert.Equal(t, StateOpenConversing, s.State())
}

func TestSession_HistoryIsACopy(t *testing.T) {
	s := NewSession()
	s.Open()

	history := s.History()
	history[0].Text = "tampered"

	assert.NotEqual(t, "tampered", s.History()[0].Text)
}
