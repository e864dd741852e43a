package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// Service resolves caller identity tokens to member records.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ResolveToken looks up the member owning a token. A missing member returns
// (nil, nil): an unknown token just means the request stays anonymous.
func (s *Service) ResolveToken(ctx context.Context, token string) (*Member, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	var member Member
	result := s.db.WithContext(ctx).Where("token = ?", token).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.DebugContext(ctx, "unknown identity token")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve identity token: %w", result.Error)
	}
	return &member, nil
}
