package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/mappers"
	"github.com/sequencehub/sequencehub/internal/infrastructure/persistence/models"
	apperrors "github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ReviewRepository implements the review repository interface with DDD patterns
type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
	logger logger.Interface
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB, logger logger.Interface) review.Repository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
		logger: logger,
	}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("you have already reviewed this product")
		}
		r.logger.Errorw("failed to create review", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create review: %w", err)
	}

	if err := rv.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set review ID: %w", err)
	}

	return nil
}

// Update updates an existing review
func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)

	result := r.db.WithContext(ctx).Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"rating":  model.Rating,
			"title":   model.Title,
			"comment": model.Comment,
			"status":  model.Status,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update review", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("review not found")
	}

	return nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete review", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("review not found")
	}

	return nil
}

// GetByID retrieves a review by internal ID
func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves a review by public SID
func (r *ReviewRepository) GetBySID(ctx context.Context, sid string) (*review.Review, error) {
	var model models.ReviewModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByUserAndProduct retrieves a user's review of a product
func (r *ReviewRepository) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*review.Review, error) {
	var model models.ReviewModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ExistsByUserAndProduct checks for a user's review of a product
func (r *ReviewRepository) ExistsByUserAndProduct(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.ReviewModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}

	return count > 0, nil
}

// List retrieves a paginated, filtered review listing
func (r *ReviewRepository) List(ctx context.Context, filter review.ListFilter) ([]*review.Review, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ReviewModel{})

	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviewModels []*models.ReviewModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(filter.PageSize).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	entities, err := r.mapper.ToEntities(reviewModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map reviews: %w", err)
	}

	return entities, total, nil
}

// GetApprovedRatings returns the ratings of all approved reviews for a product
func (r *ReviewRepository) GetApprovedRatings(ctx context.Context, productID uint) ([]int, error) {
	var ratings []int

	if err := r.db.WithContext(ctx).Model(&models.ReviewModel{}).
		Where("product_id = ? AND status = ?", productID, review.StatusApproved.String()).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to get approved ratings: %w", err)
	}

	return ratings, nil
}
