package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAuthService returns canned results per method.
type stubAuthService struct {
	user *entity.User
	err  error

	resetReq *request.ResetPasswordRequest
}

func (s *stubAuthService) Signup(context.Context, *request.SignupRequest) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) Login(context.Context, *request.LoginRequest) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) ForgotPassword(context.Context, *request.ForgotPasswordRequest) error {
	return s.err
}

func (s *stubAuthService) ResetPassword(_ context.Context, req *request.ResetPasswordRequest) error {
	s.resetReq = req
	return s.err
}

func testUser() *entity.User {
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.MustParse("3f0b8e2a-0000-4000-8000-000000000001"),
			CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		},
		Email: "alice@example.com",
	}
}

func doJSON(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestSignupResponseShape(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{user: testUser()}, zap.NewNop())

	rec, body := doJSON(t, h.Signup, `{"email":"alice@example.com","password":"hunter2-ok","confirmPassword":"hunter2-ok"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3f0b8e2a-0000-4000-8000-000000000001", user["id"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotEmpty(t, user["createdAt"])
}

func TestSignupConflict(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: usecase.ErrEmailTaken}, zap.NewNop())

	rec, body := doJSON(t, h.Signup, `{"email":"alice@example.com","password":"hunter2-ok","confirmPassword":"hunter2-ok"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User with this email already exists", body["message"])
}

func TestLoginUnauthorized(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: usecase.ErrInvalidCredentials}, zap.NewNop())

	rec, body := doJSON(t, h.Login, `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestForgotPasswordResponses(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{}, zap.NewNop())
		rec, body := doJSON(t, h.ForgotPassword, `{"email":"alice@example.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "OTP sent to email", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{err: usecase.ErrUserNotFound}, zap.NewNop())
		rec, body := doJSON(t, h.ForgotPassword, `{"email":"nobody@example.com"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", body["message"])
	})

	t.Run("dispatch failure", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{err: assert.AnError}, zap.NewNop())
		rec, body := doJSON(t, h.ForgotPassword, `{"email":"alice@example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body["message"])
	})
}

func TestResetPasswordResponses(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{}, zap.NewNop())
		rec, body := doJSON(t, h.ResetPassword, `{"email":"a@b.com","otp":"123456","newPassword":"new-password","confirmPassword":"new-password"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password reset successful", body["message"])
	})

	t.Run("expired", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{err: usecase.ErrOTPExpired}, zap.NewNop())
		rec, body := doJSON(t, h.ResetPassword, `{"email":"a@b.com","otp":"123456","newPassword":"new-password","confirmPassword":"new-password"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "OTP expired", body["message"])
	})

	t.Run("invalid", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{err: usecase.ErrOTPInvalid}, zap.NewNop())
		rec, body := doJSON(t, h.ResetPassword, `{"email":"a@b.com","otp":"000000","newPassword":"new-password","confirmPassword":"new-password"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid OTP", body["message"])
	})

	t.Run("validation details", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{err: usecase.NewValidationError("a is required", "b is required")}, zap.NewNop())
		rec, body := doJSON(t, h.ResetPassword, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", body["error"])
		assert.Len(t, body["details"], 2)
	})

	// Numeric OTP bodies are normalized to the string form.
	t.Run("numeric otp", func(t *testing.T) {
		stub := &stubAuthService{}
		h := NewAuthHandler(stub, zap.NewNop())
		doJSON(t, h.ResetPassword, `{"email":"a@b.com","otp":123456,"newPassword":"new-password","confirmPassword":"new-password"}`)

		require.NotNil(t, stub.resetReq)
		assert.Equal(t, request.OTPCode("123456"), stub.resetReq.OTP)
	})
}

func TestInvalidJSONBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	rec, body := doJSON(t, h.Signup, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON body", body["message"])
}
