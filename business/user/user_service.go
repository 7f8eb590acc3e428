package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"
	"byteBrosStore/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// TokenIssuer contract interface
type TokenIssuer interface {
	Generate(userID uint, email string, isAdmin bool) (string, error)
}

type userService struct {
	userRepo            UserRepository
	validate            *validator.Validate
	tokens              TokenIssuer
	exposeEmailConflict bool
}

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	tokens TokenIssuer,
	exposeEmailConflict bool,
) *userService {
	return &userService{
		userRepo:            userRepo,
		validate:            validate,
		tokens:              tokens,
		exposeEmailConflict: exposeEmailConflict,
	}
}

// Register persists a new account and issues its first session token.
// The email is lowercased before storage so it acts as the
// case-insensitive unique key.
func (s *userService) Register(ctx context.Context, user *domain.User) (string, domain.User, error) {
	if err := s.validate.Var(user.FullName, "required"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: full name is required", domain.ErrValidation)
	}

	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return "", domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		FullName: user.FullName,
		Email:    strings.ToLower(strings.TrimSpace(user.Email)),
		Phone:    user.Phone,
		Password: passwordHash,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		if errors.Is(err, domain.ErrEmailInUse) && s.exposeEmailConflict {
			return "", domain.User{}, domain.ErrEmailInUse
		}
		// Conflict and other insert failures are deliberately not
		// distinguishable unless the operator opts in.
		return "", domain.User{}, errors.New("failed to register user")
	}

	token, err := s.tokens.Generate(newUser.ID, newUser.Email, newUser.IsAdmin)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	newUser.Password = ""
	return token, newUser, nil
}

// Login returns the same ErrInvalidCredentials whether the email is
// unknown or the password does not match, so callers cannot enumerate
// accounts.
func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.User{}, domain.ErrInvalidCredentials
		}
		logger.Error("Failed to look up user", err)
		return "", domain.User{}, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	user.Password = ""
	return token, user, nil
}
