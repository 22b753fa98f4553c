package service

import (
	"context"
	"errors"
	"time"

	"github.com/anitrack/anitrack-go/internal/crypto"
	"github.com/anitrack/anitrack-go/internal/model"
	"github.com/anitrack/anitrack-go/internal/repository"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailTaken       = errors.New("email already taken")
	ErrUsernameTaken    = errors.New("username already taken")
)

// AuthService handles registration business logic.
type AuthService struct {
	repo *repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates a new user account. The password is hashed before it ever
// reaches the store, and the returned response never carries the hash.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if req.Username == "" {
		return model.UserResponse{}, ErrUsernameRequired
	}
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.UserResponse{}, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return model.UserResponse{}, ErrUsernameTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
