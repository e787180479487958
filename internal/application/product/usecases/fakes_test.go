package usecases

import (
	"context"
	"io"
	"log/slog"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/domain/product"
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

func (r *fakeAuditRepo) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action())
	}
	return out
}

func testRecorder() (*auditapp.Recorder, *fakeAuditRepo) {
	repo := &fakeAuditRepo{}
	return auditapp.NewRecorder(repo, testLogger()), repo
}

type fakeProductRepo struct {
	products  []*product.Product
	updateErr error
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	if p.ID() == 0 {
		if err := p.SetID(uint(len(r.products) + 1)); err != nil {
			return err
		}
	}
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	return r.updateErr
}

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
	var out []*product.Product
	for _, p := range r.products {
		if filter.Status != "" && p.Status().String() != filter.Status {
			continue
		}
		if filter.SellerID != 0 && p.SellerID() != filter.SellerID {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) UpdateRatingSummary(ctx context.Context, productID uint, summary product.RatingSummary) error {
	return nil
}

type fakeVersionRepo struct {
	versions []*product.Version
}

func (r *fakeVersionRepo) Create(ctx context.Context, v *product.Version) error {
	if v.ID() == 0 {
		if err := v.SetID(uint(len(r.versions) + 1)); err != nil {
			return err
		}
	}
	r.versions = append(r.versions, v)
	return nil
}

func (r *fakeVersionRepo) GetByID(ctx context.Context, id uint) (*product.Version, error) {
	for _, v := range r.versions {
		if v.ID() == id {
			return v, nil
		}
	}
	return nil, errors.NewNotFoundError("version not found")
}

func (r *fakeVersionRepo) GetBySID(ctx context.Context, sid string) (*product.Version, error) {
	for _, v := range r.versions {
		if v.SID() == sid {
			return v, nil
		}
	}
	return nil, errors.NewNotFoundError("version not found")
}

func (r *fakeVersionRepo) GetByProduct(ctx context.Context, productID uint) ([]*product.Version, error) {
	var out []*product.Version
	for i := len(r.versions) - 1; i >= 0; i-- {
		if r.versions[i].ProductID() == productID {
			out = append(out, r.versions[i])
		}
	}
	return out, nil
}

func (r *fakeVersionRepo) GetLatestByProduct(ctx context.Context, productID uint) (*product.Version, error) {
	for i := len(r.versions) - 1; i >= 0; i-- {
		if r.versions[i].ProductID() == productID {
			return r.versions[i], nil
		}
	}
	return nil, errors.NewNotFoundError("version not found")
}

type fakeFileRepo struct {
	files []*product.SequenceFile
}

func (r *fakeFileRepo) Create(ctx context.Context, f *product.SequenceFile) error {
	if f.ID() == 0 {
		if err := f.SetID(uint(len(r.files) + 1)); err != nil {
			return err
		}
	}
	r.files = append(r.files, f)
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, id uint) (*product.SequenceFile, error) {
	for _, f := range r.files {
		if f.ID() == id {
			return f, nil
		}
	}
	return nil, errors.NewNotFoundError("file not found")
}

func (r *fakeFileRepo) GetBySID(ctx context.Context, sid string) (*product.SequenceFile, error) {
	for _, f := range r.files {
		if f.SID() == sid {
			return f, nil
		}
	}
	return nil, errors.NewNotFoundError("file not found")
}

func (r *fakeFileRepo) GetByVersion(ctx context.Context, versionID uint) ([]*product.SequenceFile, error) {
	var out []*product.SequenceFile
	for _, f := range r.files {
		if f.VersionID() == versionID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) GetByStorageKey(ctx context.Context, storageKey string) (*product.SequenceFile, error) {
	for _, f := range r.files {
		if f.StorageKey() == storageKey {
			return f, nil
		}
	}
	return nil, errors.NewNotFoundError("file not found")
}

func (r *fakeFileRepo) FindByChecksumForSeller(ctx context.Context, sellerID uint, checksum string) (*product.SequenceFile, error) {
	for _, f := range r.files {
		if f.Checksum() == checksum {
			return f, nil
		}
	}
	return nil, nil
}
