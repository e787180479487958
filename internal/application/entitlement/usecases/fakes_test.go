package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
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

type fakeEntitlementRepo struct {
	entitlements []*entitlement.Entitlement

	recordDownloadCalls int
	recordDownloadErr   error
}

func (r *fakeEntitlementRepo) Create(ctx context.Context, e *entitlement.Entitlement) error {
	if e.ID() == 0 {
		if err := e.SetID(uint(len(r.entitlements) + 1)); err != nil {
			return err
		}
	}
	r.entitlements = append(r.entitlements, e)
	return nil
}

func (r *fakeEntitlementRepo) GetByID(ctx context.Context, id uint) (*entitlement.Entitlement, error) {
	for _, e := range r.entitlements {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, errors.NewNotFoundError("entitlement not found")
}

func (r *fakeEntitlementRepo) GetBySID(ctx context.Context, sid string) (*entitlement.Entitlement, error) {
	for _, e := range r.entitlements {
		if e.SID() == sid {
			return e, nil
		}
	}
	return nil, errors.NewNotFoundError("entitlement not found")
}

func (r *fakeEntitlementRepo) GetByUser(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	var out []*entitlement.Entitlement
	for _, e := range r.entitlements {
		if e.UserID() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntitlementRepo) ExistsActiveForUserAndProduct(ctx context.Context, userID, productID uint) (bool, error) {
	for _, e := range r.entitlements {
		if e.UserID() == userID && e.ProductID() == productID && e.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEntitlementRepo) RecordDownload(ctx context.Context, id uint, at time.Time) error {
	if r.recordDownloadErr != nil {
		return r.recordDownloadErr
	}
	r.recordDownloadCalls++
	return nil
}

func (r *fakeEntitlementRepo) DeactivateByOrder(ctx context.Context, orderID uint) error {
	for _, e := range r.entitlements {
		if e.OrderID() == orderID {
			e.Deactivate()
		}
	}
	return nil
}

type fakeTokenRepo struct {
	tokens     map[string]*entitlement.DownloadToken
	used       map[string]bool
	consumeErr error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		tokens: map[string]*entitlement.DownloadToken{},
		used:   map[string]bool{},
	}
}

func (r *fakeTokenRepo) Create(ctx context.Context, t *entitlement.DownloadToken) error {
	r.tokens[t.TokenHash()] = t
	return nil
}

func (r *fakeTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*entitlement.DownloadToken, error) {
	t, ok := r.tokens[tokenHash]
	if !ok {
		return nil, errors.NewNotFoundError("download token not found")
	}
	return t, nil
}

func (r *fakeTokenRepo) ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*entitlement.DownloadToken, error) {
	if r.consumeErr != nil {
		return nil, r.consumeErr
	}
	t, ok := r.tokens[tokenHash]
	if !ok {
		return nil, errors.NewNotFoundError("download token not found")
	}
	if r.used[tokenHash] {
		return nil, entitlement.ErrTokenAlreadyUsed
	}
	if t.ExpiresAt().Before(now) {
		return nil, entitlement.ErrTokenExpired
	}
	r.used[tokenHash] = true
	return t, nil
}

func (r *fakeTokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64
	for hash, t := range r.tokens {
		if t.ExpiresAt().Before(before) {
			delete(r.tokens, hash)
			delete(r.used, hash)
			deleted++
		}
	}
	return deleted, nil
}

type fakeFileRepo struct {
	files []*product.SequenceFile
}

func (r *fakeFileRepo) Create(ctx context.Context, f *product.SequenceFile) error {
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
	return nil, nil
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
	var out []*product.Version
	for _, v := range r.versions {
		if v.ProductID() == productID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVersionRepo) GetLatestByProduct(ctx context.Context, productID uint) (*product.Version, error) {
	versions, _ := r.GetByProduct(ctx, productID)
	if len(versions) == 0 {
		return nil, errors.NewNotFoundError("version not found")
	}
	return versions[len(versions)-1], nil
}

type fakeTokenGenerator struct {
	plaintext string
	hash      string
	err       error
	calls     int
}

// Generate returns the seeded pair on the first call and numbered variants
// after that, so every minted token is distinct.
func (g *fakeTokenGenerator) Generate() (string, string, error) {
	if g.err != nil {
		return "", "", g.err
	}
	g.calls++
	if g.calls == 1 {
		return g.plaintext, g.hash, nil
	}
	return fmt.Sprintf("%s-%d", g.plaintext, g.calls), fmt.Sprintf("%s-%d", g.hash, g.calls), nil
}
