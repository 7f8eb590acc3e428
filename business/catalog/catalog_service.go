package catalog

import (
	"context"
	"errors"
	"time"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
}

// NewsRepository contract interface
type NewsRepository interface {
	FindAll(ctx context.Context) ([]domain.News, error)
	Create(ctx context.Context, item *domain.News) error
}

// ListingCache is optional; a nil cache disables caching entirely.
type ListingCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool)
	SetProducts(ctx context.Context, products []domain.Product)
	InvalidateProducts(ctx context.Context)
	GetNews(ctx context.Context) ([]domain.News, bool)
	SetNews(ctx context.Context, news []domain.News)
	InvalidateNews(ctx context.Context)
}

type catalogService struct {
	productRepo ProductRepository
	newsRepo    NewsRepository
	cache       ListingCache
}

func NewCatalogService(productRepo ProductRepository, newsRepo NewsRepository, cache ListingCache) *catalogService {
	return &catalogService{
		productRepo: productRepo,
		newsRepo:    newsRepo,
		cache:       cache,
	}
}

func (s *catalogService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetProducts(ctx); ok {
			return products, nil
		}
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetProducts(ctx, products)
	}

	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, errors.New("product name is required")
	}

	if product.Price <= 0 {
		return nil, errors.New("product price must be greater than 0")
	}

	product.CreatedAt = time.Now()

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create product", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateProducts(ctx)
	}

	return product, nil
}

func (s *catalogService) GetAllNews(ctx context.Context) ([]domain.News, error) {
	if s.cache != nil {
		if news, ok := s.cache.GetNews(ctx); ok {
			return news, nil
		}
	}

	news, err := s.newsRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all news", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetNews(ctx, news)
	}

	return news, nil
}

func (s *catalogService) CreateNews(ctx context.Context, item *domain.News) (*domain.News, error) {
	if item.Title == "" {
		return nil, errors.New("news title is required")
	}

	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now()
	}

	if err := s.newsRepo.Create(ctx, item); err != nil {
		logger.Error("Failed to create news item", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateNews(ctx)
	}

	return item, nil
}
