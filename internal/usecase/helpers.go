package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/internal/dto/request"

	"github.com/google/uuid"
)

// parseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// resolveOwner loads the account the request body points at, by email or by
// user id. Returns ErrUserNotFound when no account matches.
func resolveOwner(ctx context.Context, users repository.UserRepository, owner request.Owner) (*entity.User, error) {
	if owner.Email != "" {
		email := strings.ToLower(strings.TrimSpace(owner.Email))
		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return user, nil
	}

	if owner.UserID != "" {
		id, err := uuid.Parse(owner.UserID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		user, err := users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return user, nil
	}

	return nil, NewValidationError("Either email or userId is required")
}
