package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"callpoint/internal/model"
	"callpoint/internal/repository"
	"callpoint/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("incorrect email/phone number or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService provides authentication related services
type AuthService interface {
	SignUp(ctx context.Context, req model.SignUpRequest) error
	Authenticate(ctx context.Context, email, phone, password string) (*model.User, error)
	SignIn(ctx context.Context, email, phone, password string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	UserByIdentifier(ctx context.Context, identifier string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *utils.TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokens *utils.TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// SignUp registers a new user. No token is issued; signing in is a separate
// explicit step. Duplicate email/phone handling is the directory's concern
// and passes through as-is.
func (s *authService) SignUp(ctx context.Context, req model.SignUpRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        &req.Email,
		Phone:        &req.Phone,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Sex:          req.Sex,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user in repository: %w", err)
	}
	return nil
}

// Authenticate looks a user up by email first, falling back to phone, and
// verifies the password. Returns (nil, nil) when no user matches or the
// password is wrong; this is a pure read path.
func (s *authService) Authenticate(ctx context.Context, email, phone, password string) (*model.User, error) {
	var user *model.User
	var err error

	if email != "" {
		user, err = s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("error finding user by email: %w", err)
		}
	}
	if user == nil && phone != "" {
		user, err = s.userRepo.FindByPhone(ctx, phone)
		if err != nil {
			return nil, fmt.Errorf("error finding user by phone: %w", err)
		}
	}

	if user == nil {
		return nil, nil
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

// SignIn authenticates and issues an access token whose subject is the
// user's email when present, phone number otherwise. All authentication
// failures collapse into ErrInvalidCredentials so callers cannot tell
// whether the identifier or the password was wrong.
func (s *authService) SignIn(ctx context.Context, email, phone, password string) (string, error) {
	user, err := s.Authenticate(ctx, email, phone, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Identifier(), utils.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// RequestPasswordReset issues a reset token for the given email. The token
// is returned to the caller directly; delivering it out-of-band is left to
// the API consumer.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	token, err := s.tokens.IssueResetToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return token, nil
}

// ResetPassword verifies the reset token, extracts its subject and updates
// that user's password. The token is not invalidated on use; it stays
// consumable until it expires.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return err
	}

	user, err := s.UserByIdentifier(ctx, subject)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.Identifier(), hashedPassword); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UserByIdentifier resolves an email-or-phone identifier to a user record,
// failing with ErrUserNotFound when nothing matches.
func (s *authService) UserByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		user, err = s.userRepo.FindByPhone(ctx, identifier)
		if err != nil {
			return nil, fmt.Errorf("error finding user by phone: %w", err)
		}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
