package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/empire-storefront/internal/application"
	"github.com/DanielPopoola/empire-storefront/internal/domain"
)

// ChatService runs the command responder against a session's state and
// keeps the transcript.
type ChatService struct {
	catalog       []domain.Product
	currencyLabel string
	logger        *slog.Logger
}

func NewChatService(catalog []domain.Product, currencyLabel string, logger *slog.Logger) *ChatService {
	return &ChatService{
		catalog:       catalog,
		currencyLabel: currencyLabel,
		logger:        logger,
	}
}

// Respond answers one submitted chat message. Blank input is rejected
// before dispatch; everything else yields exactly one reply.
func (s *ChatService) Respond(_ context.Context, session *Session, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", application.NewInvalidInputError(domain.NewEmptyMessageError())
	}

	reply := session.Chat(input, s.catalog, s.currencyLabel)
	s.logger.Info("chat message answered", "session_id", session.ID)
	return reply, nil
}

// Transcript returns the session's chat history so far.
func (s *ChatService) Transcript(_ context.Context, session *Session) []string {
	return session.Transcript()
}
