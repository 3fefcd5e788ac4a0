package feedback

import (
	"context"

	"chaicart-be/internal/logger"

	"go.uber.org/zap"
)

// Entry is one submitted feedback form. Feedback is accepted and
// discarded after logging, nothing is persisted.
type Entry struct {
	Name       string
	Phone      string
	Experience string
	Rating     string
	Comment    string
}

type Service interface {
	Submit(ctx context.Context, e Entry)
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) Submit(ctx context.Context, e Entry) {
	logger.FromCtx(ctx).Info("feedback received",
		zap.String("name", e.Name),
		zap.String("rating", e.Rating),
		zap.String("experience", e.Experience),
		zap.String("comment", e.Comment),
	)
}
