package request

// Owner identifies the requesting account. Routes accept either the email or
// the user id in the body; the raw id string is parsed in the service layer.
type Owner struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

func (o Owner) Empty() bool {
	return o.Email == "" && o.UserID == ""
}
