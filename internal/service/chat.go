package service

import (
	"context"
	"log/slog"
	"sync"

	"estates/internal/chat"
	"estates/internal/model"
	"estates/internal/query"
	"estates/internal/repository"
)

// ChatService runs the rule-based assistant over the live catalog.
// Sessions live in memory only; history does not survive a restart.
// The pure classifier in internal/chat stays synchronization-free, the
// service serialises access per process.
type ChatService struct {
	repo     *repository.PostgresRepository
	logger   *slog.Logger
	mu       sync.Mutex
	sessions map[string]*chat.Session
}

// NewChatService creates a new chat service
func NewChatService(repo *repository.PostgresRepository, logger *slog.Logger) *ChatService {
	return &ChatService{
		repo:     repo,
		logger:   logger.With("component", "chat_service"),
		sessions: make(map[string]*chat.Session),
	}
}

// Open seeds (or returns) the welcome message for a session.
func (s *ChatService) Open(sessionID string) model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).Open()
}

// Message classifies one user message against a catalog snapshot and
// returns the bot reply. A failed catalog read degrades to an empty
// snapshot: the classifier is total and still produces a graceful
// reply, per the rule fallbacks.
func (s *ChatService) Message(ctx context.Context, sessionID, text string) model.ChatMessage {
	catalog, err := s.repo.ListProperties(ctx, query.Criteria{})
	if err != nil {
		s.logger.Warn("catalog snapshot unavailable, classifying against empty catalog", "error", err)
		catalog = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).HandleInput(text, catalog)
}

// ResolveHandoff closes the contact-capture dialog for a session,
// whether it was submitted or cancelled. The session history is left
// untouched either way.
func (s *ChatService) ResolveHandoff(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(sessionID).ResolveHandoff()
}

// History returns a copy of a session's message history.
func (s *ChatService) History(sessionID string) []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).History()
}

func (s *ChatService) session(sessionID string) *chat.Session {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = chat.NewSession()
		s.sessions[sessionID] = sess
	}
	return sess
}
