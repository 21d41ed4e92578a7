package request

type DeleteUserRequest struct {
	Email string `json:"email"`
}
