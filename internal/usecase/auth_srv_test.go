package usecase

import (
	"context"
	"errors"
	"testing"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

// stubGoogleVerifier resolves known tokens to claims and rejects the rest.
type stubGoogleVerifier struct {
	tokens map[string]*utils.GoogleTokenInfo
}

func (s *stubGoogleVerifier) Verify(ctx context.Context, idToken string) (*utils.GoogleTokenInfo, error) {
	info, ok := s.tokens[idToken]
	if !ok {
		return nil, errors.New("tokeninfo rejected token: status 400")
	}
	return info, nil
}

func newTestAuthService(repo *repository.Repository, verifier utils.GoogleVerifier) AuthService {
	return NewAuthService(repo, newTestConfig(), verifier, newTestLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := newTestAuthService(repo, &stubGoogleVerifier{})

	registered, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "wanjiku",
		Email:    "wanjiku@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, registered)

	assert.NotEmpty(t, registered.Token, "register returns a usable token")
	assert.Equal(t, "wanjiku", registered.User.Username)
	assert.Equal(t, entity.RoleUser, registered.User.Role)

	loggedIn, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "wanjiku@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	claims, err := utils.ParseToken(loggedIn.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.Subject)
	assert.Equal(t, "user", claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := newTestAuthService(repo, &stubGoogleVerifier{})

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "first",
		Email:    "taken@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &request.RegisterRequest{
		Username: "second",
		Email:    "taken@example.com",
		Password: "different456",
	})
	assert.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := newTestAuthService(repo, &stubGoogleVerifier{})

	tests := []request.RegisterRequest{
		{Username: "ab", Email: "short@example.com", Password: "secret123"}, // username too short
		{Username: "valid", Email: "not-an-email", Password: "secret123"},
		{Username: "valid", Email: "valid@example.com", Password: "12345"}, // password too short
	}

	for _, req := range tests {
		_, err := svc.Register(context.Background(), &req)
		require.Error(t, err, "request %+v", req)
		assert.Contains(t, err.Error(), "validation failed")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := newTestAuthService(repo, &stubGoogleVerifier{})

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "wanjiku",
		Email:    "wanjiku@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Unknown email and wrong password return the same error.
	_, errUnknown := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, errWrongPass := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "wanjiku@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, errUnknown, entity.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, entity.ErrInvalidCredentials)
}

func TestGoogleLoginCreatesUserOnFirstVisit(t *testing.T) {
	repo, userRepo, _, _ := newTestRepository()
	verifier := &stubGoogleVerifier{tokens: map[string]*utils.GoogleTokenInfo{
		"good-token": {
			Subject:       "google-sub-1",
			Email:         "wanjiku@example.com",
			EmailVerified: "true",
			Name:          "Jane Wanjiku",
		},
	}}
	svc := newTestAuthService(repo, verifier)

	first, err := svc.LoginWithGoogle(context.Background(), &request.GoogleLoginRequest{IDToken: "good-token"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.Token)
	assert.Equal(t, "Jane Wanjiku", first.User.Username)
	assert.Equal(t, entity.RoleUser, first.User.Role)

	// Second login resolves to the same account.
	second, err := svc.LoginWithGoogle(context.Background(), &request.GoogleLoginRequest{IDToken: "good-token"})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	// The provisioned account has no usable password.
	stored, err := userRepo.FindByEmail(context.Background(), "wanjiku@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, utils.CheckPasswordHash("", stored.PasswordHash))
}

func TestGoogleLoginReusesPasswordAccount(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	verifier := &stubGoogleVerifier{tokens: map[string]*utils.GoogleTokenInfo{
		"good-token": {
			Email:         "wanjiku@example.com",
			EmailVerified: "true",
			Name:          "Jane Wanjiku",
		},
	}}
	svc := newTestAuthService(repo, verifier)

	registered, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "wanjiku",
		Email:    "wanjiku@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	viaGoogle, err := svc.LoginWithGoogle(context.Background(), &request.GoogleLoginRequest{IDToken: "good-token"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, viaGoogle.User.ID)

	// Password login still works afterwards.
	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "wanjiku@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	repo, _, _, _ := newTestRepository()
	svc := newTestAuthService(repo, &stubGoogleVerifier{})

	_, err := svc.LoginWithGoogle(context.Background(), &request.GoogleLoginRequest{IDToken: "forged"})
	assert.ErrorIs(t, err, entity.ErrInvalidGoogleToken)

	_, err = svc.LoginWithGoogle(context.Background(), &request.GoogleLoginRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestPasswordNotStoredInPlaintext(t *testing.T) {
	repo, userRepo, _, _ := newTestRepository()
	svc := newTestAuthService(repo, &stubGoogleVerifier{})

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "wanjiku",
		Email:    "wanjiku@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	stored, err := userRepo.FindByEmail(context.Background(), "wanjiku@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}
