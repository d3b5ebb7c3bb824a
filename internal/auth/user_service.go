// Package auth implements registration, login and password changes over the
// user store, the bearer tokens that carry a user's tier, and the tri-state
// Result the dashboard consumes.
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/postpilot/postpilot/internal/apperrors"
	"github.com/postpilot/postpilot/internal/config"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/types"
)

// User-facing auth failure messages
const (
	MsgEmailTaken         = "email already registered"
	MsgInvalidCredentials = "invalid email or password"
	MsgPasswordMismatch   = "current password is incorrect"
	MsgUserNotFound       = "user not found"
)

// UserStore is the subset of *db.DB used for accounts.
type UserStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService provides business logic for user authentication operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// convertDBUser converts db.User to types.User, excluding password hash
func convertDBUser(u *db.User) *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Tier:        u.Tier,
		PasswordSet: u.PasswordSet,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// Register creates a new free-tier user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to check email existence", err)
	}
	if exists {
		return nil, apperrors.Conflict(MsgEmailTaken, nil)
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, db.ErrDuplicateEmail) {
			return nil, apperrors.Conflict(MsgEmailTaken, err)
		}
		return nil, apperrors.Internal("failed to create user", err)
	}

	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to retrieve created user", err)
	}
	if u == nil {
		return nil, apperrors.Internal("created user not found", nil)
	}

	return convertDBUser(u), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to get user by email", err)
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if u == nil || !u.PasswordSet || !s.passwordConfig.VerifyPassword(req.Password, u.PasswordHash) {
		return nil, apperrors.Unauthorized(MsgInvalidCredentials, nil)
	}

	return convertDBUser(u), nil
}

// UpdatePassword updates a user's password after checking the current one
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *types.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return apperrors.Internal("failed to get user", err)
	}
	if u == nil {
		return apperrors.NotFound(MsgUserNotFound, nil)
	}

	if !s.passwordConfig.VerifyPassword(req.CurrentPassword, u.PasswordHash) {
		return apperrors.Unauthorized(MsgPasswordMismatch, nil)
	}

	newHash, err := s.passwordConfig.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.Internal("failed to hash new password", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, newHash); err != nil {
		return apperrors.Internal("failed to update password", err)
	}
	return nil
}
