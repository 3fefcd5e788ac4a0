package cart

import (
	"context"

	"chaicart-be/internal/logger"

	"go.uber.org/zap"
)

// Sessions is the session-scoped storage the cart service writes to.
// Implemented by session.Store.
type Sessions interface {
	SaveCart(sessionID string, lines []Line)
	Cart(sessionID string) []Line
}

// Service defines the business logic for carts.
type Service interface {
	Save(ctx context.Context, sessionID string, lines []Line) error
	Load(ctx context.Context, sessionID string) []Line
}

type service struct {
	sessions Sessions
}

func NewService(sessions Sessions) Service {
	return &service{sessions: sessions}
}

// Save validates the submitted lines and overwrites the session cart.
// Malformed lines are rejected at the boundary, nothing is written.
func (s *service) Save(ctx context.Context, sessionID string, lines []Line) error {
	for _, l := range lines {
		switch {
		case l.Name == "":
			return ErrEmptyName
		case l.Price < 0:
			return ErrNegativePrice
		case l.Quantity <= 0:
			return ErrInvalidQuantity
		}
	}

	s.sessions.SaveCart(sessionID, lines)

	logger.FromCtx(ctx).Info("cart saved",
		zap.String("session_id", sessionID),
		zap.Int("line_count", len(lines)),
	)
	return nil
}

// Load returns the session cart, defaulting to an empty slice.
func (s *service) Load(ctx context.Context, sessionID string) []Line {
	lines := s.sessions.Cart(sessionID)
	if lines == nil {
		return []Line{}
	}
	return lines
}
