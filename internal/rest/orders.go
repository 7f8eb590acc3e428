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

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, customerEmail string, order domain.Order, items []domain.OrderItem) (uint, error)
		ListByCustomer(ctx context.Context, email string) ([]domain.Order, error)
	}

	OrderItemInput struct {
		ProductID   int     `json:"produto_id" validate:"required"`
		ProductName string  `json:"nome_produto" validate:"required"`
		Quantity    int     `json:"quantidade" validate:"required,gt=0"`
		UnitPrice   float64 `json:"valor_unitario" validate:"gte=0"`
	}

	CreateOrderRequest struct {
		Items            []OrderItemInput `json:"itens" validate:"required,min=1,dive"`
		DeliveryAddress  string           `json:"endereco_entrega" validate:"required"`
		FreightValue     float64          `json:"valor_frete" validate:"gte=0"`
		TotalValue       float64          `json:"valor_total" validate:"required,gt=0"`
		PaymentMethod    string           `json:"forma_pagamento" validate:"required"`
		DeliveryEstimate string           `json:"prazo_entrega"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.OrderCreateDuration.Observe(time.Since(start).Seconds())
	}()

	// The owning email comes from the auth gate's verified claims only.
	email, ok := c.Get("email").(string)
	if !ok || email == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "Não autorizado."})
	}

	var req CreateOrderRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Pedido inválido."})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Pedido inválido."})
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orderID, err := h.ordersService.CreateOrder(ctx, email, domain.Order{
		DeliveryAddress:  req.DeliveryAddress,
		FreightValue:     req.FreightValue,
		TotalValue:       req.TotalValue,
		PaymentMethod:    req.PaymentMethod,
		DeliveryEstimate: req.DeliveryEstimate,
	}, items)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Pedido inválido."})
		}
		metrics.OrderCreateFailures.Inc()
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Erro ao criar pedido."})
	}

	metrics.OrdersCreated.Inc()

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Pedido criado com sucesso!",
		"pedidoId": orderID,
	})
}

func (h *OrdersHandler) ListMyOrders(c echo.Context) error {
	email, ok := c.Get("email").(string)
	if !ok || email == "" {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "Não autorizado."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.ListByCustomer(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Erro ao buscar pedidos."})
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	return c.JSON(http.StatusOK, orders)
}
