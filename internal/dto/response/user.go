package response

import (
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
)

// ProfileResponse is the user-management view of an account.
type ProfileResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	FirstName   *string            `json:"firstName,omitempty"`
	LastName    *string            `json:"lastName,omitempty"`
	Phone       *string            `json:"phone,omitempty"`
	Preferences entity.Preferences `json:"preferences"`
}

// ProfileBody wraps a profile in the success envelope.
type ProfileBody struct {
	Success bool            `json:"success"`
	User    ProfileResponse `json:"user"`
}

func NewProfileBody(user *entity.User) ProfileBody {
	return ProfileBody{
		Success: true,
		User: ProfileResponse{
			ID:          user.ID.String(),
			Email:       user.Email,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Phone:       user.Phone,
			Preferences: user.Preferences,
		},
	}
}

// DeletedUserBody is returned when an account is removed.
type DeletedUserBody struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	DeletedUser DeletedUser `json:"deletedUser"`
}

type DeletedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	DeletedAt time.Time `json:"deletedAt"`
}

func NewDeletedUserBody(user *entity.User, deletedAt time.Time) DeletedUserBody {
	return DeletedUserBody{
		Success: true,
		Message: "User deleted successfully",
		DeletedUser: DeletedUser{
			ID:        user.ID.String(),
			Email:     user.Email,
			DeletedAt: deletedAt,
		},
	}
}
