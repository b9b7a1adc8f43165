package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/ecommerce-api/internal/core/domain"
	"github.com/storelane/ecommerce-api/internal/core/ports"
)

type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

var _ ports.CategoryService = (*CategoryService)(nil)

func (s *CategoryService) CreateCategory(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		Name:      strings.TrimSpace(in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, category)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, in ports.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(in.Name)
	category.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("category_id", id).Msg("category deleted")
	return nil
}
