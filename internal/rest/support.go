package rest

import (
	"context"
	"net/http"
	"time"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SupportService interface {
	CreateInteraction(ctx context.Context, interaction *domain.SupportInteraction) (string, error)
}

type SupportHandler struct {
	supportService SupportService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewSupportHandler(supportService SupportService) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type SupportRequest struct {
	Name            string `json:"nome" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"telefone"`
	Message         string `json:"mensagem" validate:"required"`
	InteractionType string `json:"tipo_interacao" validate:"required"`
	ServiceName     string `json:"servico_nome"`
}

func (h *SupportHandler) CreateInteraction(c echo.Context) error {
	var req SupportRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Mensagem inválida."})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Mensagem inválida."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	protocol, err := h.supportService.CreateInteraction(ctx, &domain.SupportInteraction{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         req.Message,
		InteractionType: req.InteractionType,
		ServiceName:     req.ServiceName,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Erro ao salvar mensagem."})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Mensagem recebida com sucesso!",
		"protocolo": protocol,
	})
}
