package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// OTPCode accepts the code as either a JSON string or a JSON number, since
// clients historically sent both.
type OTPCode string

func (c *OTPCode) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = OTPCode(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*c = OTPCode(strconv.FormatInt(i, 10))
		return nil
	}
	*c = OTPCode(n.String())
	return nil
}

type ResetPasswordRequest struct {
	Email           string  `json:"email"`
	OTP             OTPCode `json:"otp"`
	NewPassword     string  `json:"newPassword"`
	ConfirmPassword string  `json:"confirmPassword"`
}
