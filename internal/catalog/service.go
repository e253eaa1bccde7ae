package catalog

import (
	"context"

	"chocoshop-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	log.Debug("products fetched", zap.Int("count", len(products)))
	return products, nil
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (s *service) FindByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	return s.repo.GetByIDs(ctx, ids)
}
