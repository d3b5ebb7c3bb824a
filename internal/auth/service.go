package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/apperrors"
	"github.com/postpilot/postpilot/internal/types"
	"github.com/postpilot/postpilot/internal/validation"
)

// Status is the outcome of an auth call. Callers branch only on Status.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
	StatusRegistered Status = "registered"
)

// Redirect targets returned on success
const (
	RedirectDashboard  = "/dashboard"
	RedirectOnboarding = "/onboarding"
)

// Messages for failures that carry no user-facing detail
const (
	MsgUnavailable = "authentication service unavailable"
	MsgInternal    = "something went wrong, please try again"
)

type (
	Credentials  = types.LoginRequest
	Registration = types.CreateUserRequest
)

// Result is the tri-state response of Service. Err is the underlying error
// for error results and is never serialized.
type Result struct {
	Status   Status `json:"status"`
	Data     any    `json:"data,omitempty"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
	Err      error  `json:"-"`
}

// Service adapts UserService and TokenService to Result. A Service without a
// user store answers every call with an "unavailable" error result.
type Service struct {
	users  *UserService
	tokens *TokenService
	logger *zap.Logger
}

// NewService creates the auth service. users may be nil when no database is
// configured.
func NewService(users *UserService, tokens *TokenService, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, tokens: tokens, logger: logger}
}

// Available reports whether the service has a user store.
func (s *Service) Available() bool {
	return s.users != nil && s.tokens != nil
}

// Login signs a user in and returns their token.
func (s *Service) Login(ctx context.Context, creds Credentials) Result {
	if !s.Available() {
		return s.unavailable()
	}

	user, err := s.users.Login(ctx, &creds)
	if err != nil {
		return s.failure("login", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Tier)
	if err != nil {
		return s.failure("login", apperrors.Internal("failed to generate token", err))
	}

	return Result{
		Status:   StatusSuccess,
		Data:     &types.LoginResponse{User: user, Token: token},
		Redirect: RedirectDashboard,
	}
}

// Register creates an account and signs the new user in.
func (s *Service) Register(ctx context.Context, reg Registration) Result {
	if !s.Available() {
		return s.unavailable()
	}

	user, err := s.users.Register(ctx, &reg)
	if err != nil {
		return s.failure("register", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Tier)
	if err != nil {
		return s.failure("register", apperrors.Internal("failed to generate token", err))
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return Result{
		Status:   StatusRegistered,
		Data:     &types.LoginResponse{User: user, Token: token},
		Redirect: RedirectOnboarding,
	}
}

// UpdatePassword changes the password of the user that token belongs to.
func (s *Service) UpdatePassword(ctx context.Context, token, currentPassword, newPassword string) Result {
	if !s.Available() {
		return s.unavailable()
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return s.failure("update_password", apperrors.Unauthorized("invalid or expired token", err))
	}

	req := &types.UpdatePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := s.users.UpdatePassword(ctx, claims.UserID, req); err != nil {
		return s.failure("update_password", err)
	}

	return Result{Status: StatusSuccess, Message: "password updated"}
}

func (s *Service) unavailable() Result {
	return Result{
		Status:  StatusError,
		Message: MsgUnavailable,
		Err:     apperrors.Unavailable(MsgUnavailable, nil),
	}
}

// failure builds an error Result. Internal details are logged, not returned.
func (s *Service) failure(op string, err error) Result {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return Result{Status: StatusError, Message: verr.Error(), Data: verr, Err: err}
	}

	var de *apperrors.DomainError
	if errors.As(err, &de) && de.Type != apperrors.ErrTypeInternal {
		return Result{Status: StatusError, Message: de.Message, Err: err}
	}

	s.logger.Error("auth operation failed", zap.String("op", op), zap.Error(err))
	return Result{Status: StatusError, Message: MsgInternal, Err: err}
}
