package rest

import (
	"context"
	"net/http"
	"time"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type NewsService interface {
	GetAllNews(ctx context.Context) ([]domain.News, error)
	CreateNews(ctx context.Context, item *domain.News) (*domain.News, error)
}

type NewsHandler struct {
	newsService NewsService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewNewsHandler(newsService NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type CreateNewsRequest struct {
	Title    string `json:"titulo" validate:"required"`
	Content  string `json:"conteudo"`
	ImageURL string `json:"imagem_url"`
}

func (h *NewsHandler) GetAllNews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	news, err := h.newsService.GetAllNews(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Erro ao buscar notícias."})
	}

	if news == nil {
		news = []domain.News{}
	}

	return c.JSON(http.StatusOK, news)
}

func (h *NewsHandler) CreateNews(c echo.Context) error {
	var req CreateNewsRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.newsService.CreateNews(ctx, &domain.News{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(item))
}
