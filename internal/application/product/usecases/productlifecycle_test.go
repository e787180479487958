package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	pvo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
)

func seedProduct(t *testing.T, repo *fakeProductRepo, status pvo.Status) *product.Product {
	t.Helper()
	slug, err := pvo.NewSlug("spooky-halloween-mega-mix")
	require.NoError(t, err)
	p, err := product.ReconstructProduct(3, "prod_abc123", 2, "Spooky Halloween Mega Mix", slug, "A **spooky** mix.", "halloween", 1999, status, product.RatingSummary{}, time.Now(), time.Now())
	require.NoError(t, err)
	repo.products = append(repo.products, p)
	return p
}

func seedVersionWithFile(t *testing.T, versionRepo *fakeVersionRepo, fileRepo *fakeFileRepo, productID uint) *product.Version {
	t.Helper()
	v, err := product.ReconstructVersion(5, "ver_abc123", productID, "v1.0", "Initial release.", time.Now())
	require.NoError(t, err)
	versionRepo.versions = append(versionRepo.versions, v)
	f, err := product.ReconstructSequenceFile(10, "file_abc123", v.ID(), "show.zip", "sellers/2/uploads/up_1", 2048, "abcd1234", time.Now())
	require.NoError(t, err)
	fileRepo.files = append(fileRepo.files, f)
	return v
}

func TestSubmitProductUseCase_Execute_Success(t *testing.T) {
	productRepo := &fakeProductRepo{}
	versionRepo := &fakeVersionRepo{}
	fileRepo := &fakeFileRepo{}
	p := seedProduct(t, productRepo, pvo.StatusDraft)
	seedVersionWithFile(t, versionRepo, fileRepo, p.ID())
	uc := NewSubmitProductUseCase(productRepo, versionRepo, fileRepo)

	resp, err := uc.Execute(context.Background(), 2, authorization.RoleSeller, "prod_abc123")

	require.NoError(t, err)
	assert.Equal(t, pvo.StatusPending.String(), resp.Status)
	assert.Equal(t, pvo.StatusPending, p.Status())
}

func TestSubmitProductUseCase_Execute_NeedsVersion(t *testing.T) {
	productRepo := &fakeProductRepo{}
	p := seedProduct(t, productRepo, pvo.StatusDraft)
	uc := NewSubmitProductUseCase(productRepo, &fakeVersionRepo{}, &fakeFileRepo{})

	_, err := uc.Execute(context.Background(), 2, authorization.RoleSeller, "prod_abc123")

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, pvo.StatusDraft, p.Status())
}

func TestSubmitProductUseCase_Execute_NeedsFiles(t *testing.T) {
	productRepo := &fakeProductRepo{}
	versionRepo := &fakeVersionRepo{}
	p := seedProduct(t, productRepo, pvo.StatusDraft)
	v, err := product.ReconstructVersion(5, "ver_abc123", p.ID(), "v1.0", "", time.Now())
	require.NoError(t, err)
	versionRepo.versions = append(versionRepo.versions, v)
	uc := NewSubmitProductUseCase(productRepo, versionRepo, &fakeFileRepo{})

	_, err = uc.Execute(context.Background(), 2, authorization.RoleSeller, "prod_abc123")

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetAppError(err).Type)
}

func TestSubmitProductUseCase_Execute_NotOwner(t *testing.T) {
	productRepo := &fakeProductRepo{}
	versionRepo := &fakeVersionRepo{}
	fileRepo := &fakeFileRepo{}
	p := seedProduct(t, productRepo, pvo.StatusDraft)
	seedVersionWithFile(t, versionRepo, fileRepo, p.ID())
	uc := NewSubmitProductUseCase(productRepo, versionRepo, fileRepo)

	_, err := uc.Execute(context.Background(), 42, authorization.RoleSeller, "prod_abc123")

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
}

func TestSubmitProductUseCase_Execute_AlreadyPending(t *testing.T) {
	productRepo := &fakeProductRepo{}
	versionRepo := &fakeVersionRepo{}
	fileRepo := &fakeFileRepo{}
	p := seedProduct(t, productRepo, pvo.StatusPending)
	seedVersionWithFile(t, versionRepo, fileRepo, p.ID())
	uc := NewSubmitProductUseCase(productRepo, versionRepo, fileRepo)

	_, err := uc.Execute(context.Background(), 2, authorization.RoleSeller, "prod_abc123")

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestModerateProductUseCase_Execute_Approve(t *testing.T) {
	productRepo := &fakeProductRepo{}
	p := seedProduct(t, productRepo, pvo.StatusPending)
	recorder, auditRepo := testRecorder()
	uc := NewModerateProductUseCase(productRepo, recorder, testLogger())

	resp, err := uc.Execute(context.Background(), 1, "prod_abc123", dto.ModerateProductRequest{Decision: "approve"}, auditapp.RequestInfo{})

	require.NoError(t, err)
	assert.Equal(t, pvo.StatusApproved.String(), resp.Status)
	assert.Equal(t, pvo.StatusApproved, p.Status())
	assert.Equal(t, []string{constants.AuditProductApproved}, auditRepo.actions())
}

func TestModerateProductUseCase_Execute_Reject(t *testing.T) {
	productRepo := &fakeProductRepo{}
	p := seedProduct(t, productRepo, pvo.StatusPending)
	recorder, auditRepo := testRecorder()
	uc := NewModerateProductUseCase(productRepo, recorder, testLogger())

	_, err := uc.Execute(context.Background(), 1, "prod_abc123", dto.ModerateProductRequest{Decision: "reject", Reason: "low quality preview"}, auditapp.RequestInfo{})

	require.NoError(t, err)
	assert.Equal(t, pvo.StatusRejected, p.Status())
	assert.Equal(t, []string{constants.AuditProductRejected}, auditRepo.actions())
}

func TestModerateProductUseCase_Execute_DraftNotModeratable(t *testing.T) {
	productRepo := &fakeProductRepo{}
	seedProduct(t, productRepo, pvo.StatusDraft)
	recorder, auditRepo := testRecorder()
	uc := NewModerateProductUseCase(productRepo, recorder, testLogger())

	_, err := uc.Execute(context.Background(), 1, "prod_abc123", dto.ModerateProductRequest{Decision: "approve"}, auditapp.RequestInfo{})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Empty(t, auditRepo.actions())
}

func TestModerateProductUseCase_Execute_UnknownDecision(t *testing.T) {
	productRepo := &fakeProductRepo{}
	seedProduct(t, productRepo, pvo.StatusPending)
	recorder, _ := testRecorder()
	uc := NewModerateProductUseCase(productRepo, recorder, testLogger())

	_, err := uc.Execute(context.Background(), 1, "prod_abc123", dto.ModerateProductRequest{Decision: "escalate"}, auditapp.RequestInfo{})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetAppError(err).Type)
}
