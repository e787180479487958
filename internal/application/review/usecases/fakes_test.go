package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeAuditRepo struct {
	entries []*audit.Entry
}

func (r *fakeAuditRepo) Insert(ctx context.Context, e *audit.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func testRecorder() (*auditapp.Recorder, *fakeAuditRepo) {
	repo := &fakeAuditRepo{}
	return auditapp.NewRecorder(repo, testLogger()), repo
}

type fakeReviewRepo struct {
	reviews map[uint]*review.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uint]*review.Review{}, nextID: 1}
}

func (r *fakeReviewRepo) add(rev *review.Review) *review.Review {
	r.reviews[rev.ID()] = rev
	if rev.ID() >= r.nextID {
		r.nextID = rev.ID() + 1
	}
	return rev
}

func (r *fakeReviewRepo) Create(ctx context.Context, rev *review.Review) error {
	if err := rev.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.reviews[rev.ID()] = rev
	return nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, rev *review.Review) error {
	r.reviews[rev.ID()] = rev
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id uint) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, errors.NewNotFoundError("review not found")
	}
	return rev, nil
}

func (r *fakeReviewRepo) GetBySID(ctx context.Context, sid string) (*review.Review, error) {
	for _, rev := range r.reviews {
		if rev.SID() == sid {
			return rev, nil
		}
	}
	return nil, errors.NewNotFoundError("review not found")
}

func (r *fakeReviewRepo) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*review.Review, error) {
	for _, rev := range r.reviews {
		if rev.UserID() == userID && rev.ProductID() == productID {
			return rev, nil
		}
	}
	return nil, errors.NewNotFoundError("review not found")
}

func (r *fakeReviewRepo) ExistsByUserAndProduct(ctx context.Context, userID, productID uint) (bool, error) {
	_, err := r.GetByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return true, nil
	}
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return false, err
}

func (r *fakeReviewRepo) List(ctx context.Context, filter review.ListFilter) ([]*review.Review, int64, error) {
	var out []*review.Review
	for _, rev := range r.reviews {
		if filter.ProductID != 0 && rev.ProductID() != filter.ProductID {
			continue
		}
		if filter.Status != "" && rev.Status().String() != filter.Status {
			continue
		}
		out = append(out, rev)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) GetApprovedRatings(ctx context.Context, productID uint) ([]int, error) {
	var out []int
	for _, rev := range r.reviews {
		if rev.ProductID() == productID && rev.IsApproved() {
			out = append(out, rev.Rating())
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products []*product.Product

	ratingUpdates []product.RatingSummary
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }

func (r *fakeProductRepo) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	for _, p := range r.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) GetBySID(ctx context.Context, sid string) (*product.Product, error) {
	for _, p := range r.products {
		if p.SID() == sid {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	for _, p := range r.products {
		if p.Slug().String() == slug {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	_, err := r.GetBySlug(ctx, slug)
	if err == nil {
		return true, nil
	}
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return false, err
}

func (r *fakeProductRepo) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	return r.products, int64(len(r.products)), nil
}

func (r *fakeProductRepo) UpdateRatingSummary(ctx context.Context, productID uint, summary product.RatingSummary) error {
	r.ratingUpdates = append(r.ratingUpdates, summary)
	return nil
}

type fakeEntitlementChecker struct {
	owned map[[2]uint]bool
}

func newFakeEntitlementChecker() *fakeEntitlementChecker {
	return &fakeEntitlementChecker{owned: map[[2]uint]bool{}}
}

func (r *fakeEntitlementChecker) grant(userID, productID uint) {
	r.owned[[2]uint{userID, productID}] = true
}

func (r *fakeEntitlementChecker) Create(ctx context.Context, e *entitlement.Entitlement) error {
	return nil
}

func (r *fakeEntitlementChecker) GetByID(ctx context.Context, id uint) (*entitlement.Entitlement, error) {
	return nil, errors.NewNotFoundError("entitlement not found")
}

func (r *fakeEntitlementChecker) GetBySID(ctx context.Context, sid string) (*entitlement.Entitlement, error) {
	return nil, errors.NewNotFoundError("entitlement not found")
}

func (r *fakeEntitlementChecker) GetByUser(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	return nil, nil
}

func (r *fakeEntitlementChecker) ExistsActiveForUserAndProduct(ctx context.Context, userID, productID uint) (bool, error) {
	return r.owned[[2]uint{userID, productID}], nil
}

func (r *fakeEntitlementChecker) RecordDownload(ctx context.Context, id uint, at time.Time) error {
	return nil
}

func (r *fakeEntitlementChecker) DeactivateByOrder(ctx context.Context, orderID uint) error {
	return nil
}
