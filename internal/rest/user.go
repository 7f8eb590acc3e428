package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"
	"byteBrosStore/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, user *domain.User) (string, domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type RegisterRequest struct {
	FullName string `json:"nome_completo" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"telefone"`
	Password string `json:"senha" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"erro"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Nome, email e senha são obrigatórios."})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate user registration", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Nome, email e senha são obrigatórios."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, user, err := h.userService.Register(ctx, &domain.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Nome, email e senha são obrigatórios."})
		}
		if errors.Is(err, domain.ErrEmailInUse) {
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Erro ao registrar usuário. O e-mail já pode estar em uso."})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Erro ao registrar usuário."})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"nome":  user.FullName,
		"email": user.Email,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Email e senha são obrigatórios."})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Email e senha são obrigatórios."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, user, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: "Credenciais inválidas."})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Erro no servidor durante o login."})
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"token":    token,
		"nome":     user.FullName,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	})
}
