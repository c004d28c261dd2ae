package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)

	// LoginWithGoogle verifies a Google ID token, finds or creates the
	// user by its verified email, and issues the same bearer token the
	// password flow does.
	LoginWithGoogle(ctx context.Context, req *request.GoogleLoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo     *repository.Repository
	config   *utils.Config
	verifier utils.GoogleVerifier
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	verifier utils.GoogleVerifier,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		config:   config,
		verifier: verifier,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Pre-check gives a friendly error; the unique constraint on email is
	// what actually closes the race.
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, entity.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// Auto login after register
	return s.issueAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Unknown email and wrong password produce the same failure so the
	// login endpoint cannot be used to enumerate accounts.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, entity.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, entity.ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return s.issueAuthResponse(user)
}

func (s *authService) LoginWithGoogle(ctx context.Context, req *request.GoogleLoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Google login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	info, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		s.log.Warn("Google token rejected", zap.Error(err))
		return nil, entity.ErrInvalidGoogleToken
	}

	user, err := s.repo.User.FindByEmail(ctx, info.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", info.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		user, err = s.createGoogleUser(ctx, info)
		if err != nil {
			return nil, err
		}
	}

	s.log.Info("User logged in via Google",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.issueAuthResponse(user)
}

// createGoogleUser provisions an account for a first-time Google login.
// The stored hash is of a random secret, so the account has no usable
// password until the user sets one.
func (s *authService) createGoogleUser(ctx context.Context, info *utils.GoogleTokenInfo) (*entity.User, error) {
	placeholder, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		s.log.Error("Failed to hash placeholder password", zap.Error(err))
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	username := info.Name
	if username == "" {
		username = info.Email
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        info.Email,
		PasswordHash: placeholder,
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user from Google login", zap.Error(err), zap.String("email", info.Email))
		return nil, err
	}

	s.log.Info("User registered via Google",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return user, nil
}

func (s *authService) issueAuthResponse(user *entity.User) (*response.AuthResponse, error) {
	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour

	token, expiresAt, err := utils.IssueToken(user.ID, string(user.Role), s.config.JWT.Secret, expiry)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}
