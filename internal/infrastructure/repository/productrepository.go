package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/mappers"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ProductRepository implements the product repository interface with DDD patterns
type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB, logger logger.Interface) product.Repository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("product slug already in use")
		}
		r.logger.Errorw("failed to create product", "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set product ID: %w", err)
	}

	r.logger.Infow("product created", "id", model.ID, "sid", model.SID, "slug", model.Slug)
	return nil
}

// Update updates an existing product
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"slug":        model.Slug,
			"description": model.Description,
			"category":    model.Category,
			"price_cents": model.PriceCents,
			"status":      model.Status,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("product slug already in use")
		}
		r.logger.Errorw("failed to update product", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}

	return nil
}

// GetByID retrieves a product by internal ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves a product by public SID
func (r *ProductRepository) GetBySID(ctx context.Context, sid string) (*product.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySlug retrieves a product by slug
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ExistsBySlug checks if a product with the slug exists
func (r *ProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return count > 0, nil
}

// List retrieves a paginated, filtered product listing
func (r *ProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})

	if filter.SellerID != 0 {
		query = query.Where("seller_id = ?", filter.SellerID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var productModels []*models.ProductModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(filter.PageSize).
		Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	entities, err := r.mapper.ToEntities(productModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map products: %w", err)
	}

	return entities, total, nil
}

// UpdateRatingSummary persists only the denormalized review aggregates
func (r *ProductRepository) UpdateRatingSummary(ctx context.Context, productID uint, summary product.RatingSummary) error {
	dist, err := json.Marshal(summary.Distribution)
	if err != nil {
		return fmt.Errorf("failed to encode rating distribution: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"average_rating": summary.AverageRating,
			"review_count":   summary.ReviewCount,
			"rating_dist":    dist,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update rating summary", "product_id", productID, "error", result.Error)
		return fmt.Errorf("failed to update rating summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}

	return nil
}
