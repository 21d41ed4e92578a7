package response

import (
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
)

// UserSummary is the minimal account shape returned by signup and login.
type UserSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthBody wraps a user summary in the success envelope.
type AuthBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    UserSummary `json:"user"`
}

func NewAuthBody(message string, user *entity.User) AuthBody {
	return AuthBody{
		Success: true,
		Message: message,
		User: UserSummary{
			ID:        user.ID.String(),
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}
}
