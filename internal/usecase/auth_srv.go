package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/pkg/mailer"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*entity.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Sender
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Sender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
		now:    time.Now,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*entity.User, error) {
	// 1. Required fields
	if req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, NewValidationError("Email, password, and confirm password are required")
	}

	// 2. Email format
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, NewValidationError("Please provide a valid email address")
	}

	// 3. Passwords match
	if req.Password != req.ConfirmPassword {
		return nil, NewValidationError("Passwords do not match")
	}

	// 4. Password length bounds
	if len(req.Password) < 8 {
		return nil, NewValidationError("Password must be at least 8 characters long")
	}
	if len(req.Password) > 16 {
		return nil, NewValidationError("Password must be at most 16 characters long")
	}

	// 5. Email not already registered
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// 6. Hash password
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 7. Create user
	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: passwordHash,
		Preferences:  entity.DefaultPreferences(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	// 1. Required fields
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, NewValidationError("Email and password are required")
	}

	// 2. Email format
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, NewValidationError("Please provide a valid email address")
	}

	// 3. Find user; unknown email and bad password look identical to callers
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return user, nil
}

// ForgotPassword issues a fresh one-time code: generate, hash, persist the
// hash with its expiry in one write, then email the plaintext code. The code
// only ever exists in clear form inside this call and the outbound mail.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	// 1. Validate email
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return NewValidationError("Email is required")
	}
	if !utils.IsValidEmail(email) {
		return NewValidationError("Please provide a valid email address")
	}

	// 2. Find user. Unknown emails get a 404; this leaks account existence
	// and is kept deliberately for client compatibility.
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 3. Generate and hash the code
	code, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err))
		return fmt.Errorf("generate OTP: %w", err)
	}

	codeHash, err := utils.HashPassword(code)
	if err != nil {
		s.log.Error("Failed to hash OTP", zap.Error(err))
		return fmt.Errorf("hash OTP: %w", err)
	}

	// 4. Persist hash + expiry as one atomic pair. A prior unconsumed code
	// is silently overwritten.
	expiresAt := s.now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)
	if err := s.repo.User.SetResetCode(ctx, email, codeHash, expiresAt); err != nil {
		s.log.Error("Failed to store reset code", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("store reset code: %w", err)
	}

	// 5. Dispatch is awaited: a failed send surfaces as an internal error
	// rather than a false "sent" acknowledgment. The stored pair stays
	// valid, so a retry just overwrites it.
	if err := s.mail.SendOTP(ctx, email, code, expiresAt); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("dispatch OTP: %w", err)
	}

	s.log.Info("Reset code issued",
		zap.String("email", email),
		zap.Time("expires_at", expiresAt))

	return nil
}

// ResetPassword verifies the submitted code against the stored hash and, only
// on full success, replaces the credential and clears the reset pair in a
// single write. A failed code check leaves the pair untouched so the user can
// retry a mistyped code until it expires.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	code := strings.TrimSpace(string(req.OTP))

	// 1. All fields present
	if email == "" || code == "" ||
		strings.TrimSpace(req.NewPassword) == "" || strings.TrimSpace(req.ConfirmPassword) == "" {
		return NewValidationError("Email, OTP, new password, and confirm password are required")
	}

	// 2. Email format
	if !utils.IsValidEmail(email) {
		return NewValidationError("Please provide a valid email address")
	}

	// 3. Passwords match
	if req.NewPassword != req.ConfirmPassword {
		return NewValidationError("Passwords do not match")
	}

	// 4. Password length
	if len(req.NewPassword) < 8 {
		return NewValidationError("Password must be at least 8 characters long")
	}

	// 5. Account exists
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 6. A non-expired code must be outstanding. Missing state reads the
	// same as expired state.
	if !user.HasPendingReset(s.now()) {
		return ErrOTPExpired
	}

	// 7. Code matches the stored hash (bcrypt compare, not raw equality)
	if !utils.CheckPasswordHash(code, *user.ResetCodeHash) {
		s.log.Warn("Reset attempted with wrong code", zap.String("user_id", user.ID.String()))
		return ErrOTPInvalid
	}

	// Replace credential and consume the code in one update.
	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.repo.User.ResetPassword(ctx, email, newHash); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))

	return nil
}
