package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/ecommerce-api/internal/api/metrics"
	"github.com/storelane/ecommerce-api/internal/core/domain"
	"github.com/storelane/ecommerce-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProductCache abstracts the read-through product cache (Redis).
// Get returns (nil, nil) on a cache miss.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Invalidate(ctx context.Context, id int64) error
}

type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	cache      ProductCache
	log        zerolog.Logger
}

// NewProductService returns a ProductService. cache may be nil, in which
// case every read goes to the repository.
func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, cache ProductCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, cache: cache, log: log}
}

var _ ports.ProductService = (*ProductService)(nil)

func (s *ProductService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		SKU:         strings.TrimSpace(in.SKU),
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", created.ID).Str("sku", created.SKU).Msg("product created")
	return created, nil
}

// GetProduct serves reads cache-first. Cache faults are non-fatal: the
// repository stays the source of truth.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Int64("product_id", id).Msg("product cache read failed")
		} else if cached != nil {
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			s.log.Warn().Err(err).Int64("product_id", id).Msg("product cache write failed")
		}
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		CategoryID: in.CategoryID,
		Search:     strings.TrimSpace(in.Search),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	product.SKU = strings.TrimSpace(in.SKU)
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// BuyProduct atomically decrements stock; the store rejects purchases
// that would drive stock negative.
func (s *ProductService) BuyProduct(ctx context.Context, in ports.BuyProductInput) (*domain.Product, error) {
	product, err := s.repo.DecrementStock(ctx, strings.TrimSpace(in.SKU), in.Quantity)
	if err != nil {
		return nil, err
	}

	metrics.ProductsBoughtTotal.WithLabelValues(product.SKU).Add(float64(in.Quantity))
	s.invalidate(ctx, product.ID)
	s.log.Info().Str("sku", product.SKU).Int("quantity", in.Quantity).Int("stock_left", product.Stock).Msg("product bought")
	return product, nil
}

func (s *ProductService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("product_id", id).Msg("product cache invalidation failed")
	}
}
