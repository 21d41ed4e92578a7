package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/internal/dto/request"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) SetResetCode(_ context.Context, email, codeHash string, expiresAt time.Time) error {
	u, ok := f.users[email]
	if !ok {
		return errors.New("no row updated")
	}
	u.ResetCodeHash = &codeHash
	u.ResetCodeExpiresAt = &expiresAt
	return nil
}

func (f *fakeUserRepo) ResetPassword(_ context.Context, email, passwordHash string) error {
	u, ok := f.users[email]
	if !ok {
		return errors.New("no row updated")
	}
	u.PasswordHash = passwordHash
	u.ResetCodeHash = nil
	u.ResetCodeExpiresAt = nil
	return nil
}

func (f *fakeUserRepo) DeleteByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	delete(f.users, email)
	return u, nil
}

// fakeMailer records sent codes; fail makes every send error out.
type fakeMailer struct {
	sent []string
	to   []string
	fail bool
}

func (f *fakeMailer) SendOTP(_ context.Context, to, code string, _ time.Time) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.to = append(f.to, to)
	f.sent = append(f.sent, code)
	return nil
}

type authFixture struct {
	svc   *authService
	users *fakeUserRepo
	mail  *fakeMailer
	now   time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := newFakeUserRepo()
	mail := &fakeMailer{}
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	f := &authFixture{
		users: users,
		mail:  mail,
		now:   now,
	}
	f.svc = &authService{
		repo:   &repository.Repository{User: users},
		mail:   mail,
		config: &utils.Config{OTP: utils.OTPConfig{ExpiryMinutes: 10, Length: 6}},
		log:    zap.NewNop(),
		now:    func() time.Time { return f.now },
	}
	return f
}

func (f *authFixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *authFixture) signup(t *testing.T, email, password string) *entity.User {
	t.Helper()
	user, err := f.svc.Signup(context.Background(), &request.SignupRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
	return user
}

func (f *authFixture) lastCode(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.mail.sent)
	return f.mail.sent[len(f.mail.sent)-1]
}

func TestSignup(t *testing.T) {
	f := newAuthFixture(t)

	user := f.signup(t, "Alice@Example.com", "hunter2-ok")

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "hunter2-ok", user.PasswordHash)
	assert.Equal(t, "CAD", user.Preferences.Currency)

	_, err := f.svc.Signup(context.Background(), &request.SignupRequest{
		Email:           "alice@example.com",
		Password:        "hunter2-ok",
		ConfirmPassword: "hunter2-ok",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupValidation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  request.SignupRequest
	}{
		{"missing fields", request.SignupRequest{Email: "a@b.com"}},
		{"bad email", request.SignupRequest{Email: "not-an-email", Password: "longenough", ConfirmPassword: "longenough"}},
		{"mismatch", request.SignupRequest{Email: "a@b.com", Password: "longenough", ConfirmPassword: "different!"}},
		{"too short", request.SignupRequest{Email: "a@b.com", Password: "short12", ConfirmPassword: "short12"}},
		{"too long", request.SignupRequest{Email: "a@b.com", Password: strings.Repeat("x", 17), ConfirmPassword: strings.Repeat("x", 17)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Signup(ctx, &tt.req)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "hunter2-ok")
	ctx := context.Background()

	user, err := f.svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "hunter2-ok"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email reads the same as a bad password.
	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "hunter2-ok"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotPasswordStoresHashedCode(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "hunter2-ok")
	ctx := context.Background()

	err := f.svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	code := f.lastCode(t)
	assert.Len(t, code, 6)
	assert.Equal(t, []string{"alice@example.com"}, f.mail.to)

	stored := f.users.users["alice@example.com"]
	require.NotNil(t, stored.ResetCodeHash)
	require.NotNil(t, stored.ResetCodeExpiresAt)

	// Hashed at rest, never the plaintext code.
	assert.NotEqual(t, code, *stored.ResetCodeHash)
	assert.True(t, utils.CheckPasswordHash(code, *stored.ResetCodeHash))
	assert.Equal(t, f.now.Add(10*time.Minute), *stored.ResetCodeExpiresAt)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "hunter2-ok")

	err := f.svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.Empty(t, f.mail.sent)
	assert.Nil(t, f.users.users["alice@example.com"].ResetCodeHash)
}

func TestForgotPasswordMailFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "hunter2-ok")
	f.mail.fail = true

	err := f.svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{Email: "alice@example.com"})
	require.Error(t, err)

	// The pair was stored before the send; a later forgot-password retry
	// simply overwrites it.
	assert.NotNil(t, f.users.users["alice@example.com"].ResetCodeHash)
}

func TestSecondRequestInvalidatesFirstCode(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "hunter2-ok")
	ctx := context.Background()

	require.NoError(t, f.svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "alice@example.com"}))
	first := f.lastCode(t)

	require.NoError(t, f.svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "alice@example.com"}))
	second := f.lastCode(t)

	if first != second {
		err := f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
			Email:           "alice@example.com",
			OTP:             request.OTPCode(first),
			NewPassword:     "brand-new-pw",
			ConfirmPassword: "brand-new-pw",
		})
		assert.ErrorIs(t, err, ErrOTPInvalid)
	}

	err := f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             request.OTPCode(second),
		NewPassword:     "brand-new-pw",
		ConfirmPassword: "brand-new-pw",
	})
	assert.NoError(t, err)
}

func TestResetPasswordHappyPath(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "old-password")
	ctx := context.Background()

	require.NoError(t, f.svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "alice@example.com"}))
	code := f.lastCode(t)

	// Still inside the window.
	f.advance(9 * time.Minute)

	err := f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             request.OTPCode(code),
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	require.NoError(t, err)

	// Pair consumed.
	stored := f.users.users["alice@example.com"]
	assert.Nil(t, stored.ResetCodeHash)
	assert.Nil(t, stored.ResetCodeExpiresAt)

	// Old credential dead, new one live.
	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "old-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "new-password"})
	assert.NoError(t, err)

	// A consumed code cannot be replayed.
	err = f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             request.OTPCode(code),
		NewPassword:     "another-pw-1",
		ConfirmPassword: "another-pw-1",
	})
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestResetPasswordExpiredCode(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "old-password")
	ctx := context.Background()

	require.NoError(t, f.svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "alice@example.com"}))
	code := f.lastCode(t)

	f.advance(11 * time.Minute)

	// Correct code, too late.
	err := f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             request.OTPCode(code),
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, ErrOTPExpired)

	// Password unchanged.
	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "old-password"})
	assert.NoError(t, err)
}

func TestResetPasswordWrongCodeLeavesPairIntact(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "old-password")
	ctx := context.Background()

	require.NoError(t, f.svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "alice@example.com"}))
	code := f.lastCode(t)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	err := f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             request.OTPCode(wrong),
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, ErrOTPInvalid)

	// The pair survives, so the real code still works.
	err = f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             request.OTPCode(code),
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	assert.NoError(t, err)
}

func TestResetPasswordValidationPrecedesOTPCheck(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "old-password")
	ctx := context.Background()

	require.NoError(t, f.svc.ForgotPassword(ctx, &request.ForgotPasswordRequest{Email: "alice@example.com"}))
	code := f.lastCode(t)

	// Correct code, 6-char password: rejected before any OTP comparison.
	err := f.svc.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             request.OTPCode(code),
		NewPassword:     "sixchr",
		ConfirmPassword: "sixchr",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Details[0], "at least 8 characters")

	// Pair untouched.
	assert.NotNil(t, f.users.users["alice@example.com"].ResetCodeHash)
}

func TestResetPasswordMissingFields(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Email: "alice@example.com",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email, OTP, new password, and confirm password are required", verr.Details[0])
}

func TestResetPasswordNoPendingReset(t *testing.T) {
	f := newAuthFixture(t)
	f.signup(t, "alice@example.com", "old-password")

	// Never requested a code: reads the same as expired.
	err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Email:           "alice@example.com",
		OTP:             "123456",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	assert.ErrorIs(t, err, ErrOTPExpired)
}
