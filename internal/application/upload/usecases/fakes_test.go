package usecases

import (
	"context"
	"io"
	"log/slog"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/upload"
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

type fakeSessionRepo struct {
	sessions []*upload.Session
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *upload.Session) error {
	if s.ID() == 0 {
		if err := s.SetID(uint(len(r.sessions) + 1)); err != nil {
			return err
		}
	}
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, s *upload.Session) error { return nil }

func (r *fakeSessionRepo) GetBySID(ctx context.Context, sid string) (*upload.Session, error) {
	for _, s := range r.sessions {
		if s.SID() == sid {
			return s, nil
		}
	}
	return nil, errors.NewNotFoundError("upload session not found")
}

type fakeVersionRepo struct {
	versions []*product.Version
}

func (r *fakeVersionRepo) Create(ctx context.Context, v *product.Version) error {
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
	return r.versions, nil
}

func (r *fakeVersionRepo) GetLatestByProduct(ctx context.Context, productID uint) (*product.Version, error) {
	if len(r.versions) == 0 {
		return nil, errors.NewNotFoundError("version not found")
	}
	return r.versions[len(r.versions)-1], nil
}

type fakeProductRepo struct {
	products []*product.Product
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
	return nil, errors.NewNotFoundError("product not found")
}

func (r *fakeProductRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	return r.products, int64(len(r.products)), nil
}

func (r *fakeProductRepo) UpdateRatingSummary(ctx context.Context, productID uint, summary product.RatingSummary) error {
	return nil
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
