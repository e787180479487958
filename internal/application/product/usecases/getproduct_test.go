package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pvo "github.com/sequencehub/sequencehub/internal/domain/product/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/services/markdown"
)

func newGetProductUseCase(productRepo *fakeProductRepo, versionRepo *fakeVersionRepo, fileRepo *fakeFileRepo) *GetProductUseCase {
	return NewGetProductUseCase(productRepo, versionRepo, fileRepo, markdown.NewService(), testLogger())
}

func TestGetProductUseCase_Execute_BySlug(t *testing.T) {
	productRepo := &fakeProductRepo{}
	versionRepo := &fakeVersionRepo{}
	fileRepo := &fakeFileRepo{}
	p := seedProduct(t, productRepo, pvo.StatusApproved)
	seedVersionWithFile(t, versionRepo, fileRepo, p.ID())
	uc := newGetProductUseCase(productRepo, versionRepo, fileRepo)

	resp, err := uc.Execute(context.Background(), 0, "", "spooky-halloween-mega-mix")

	require.NoError(t, err)
	assert.Equal(t, "prod_abc123", resp.SID)
	assert.Contains(t, resp.DescriptionHTML, "<strong>spooky</strong>")
	require.Len(t, resp.Versions, 1)
	assert.Equal(t, "v1.0", resp.Versions[0].Label)
	require.Len(t, resp.Versions[0].Files, 1)
	assert.Equal(t, "show.zip", resp.Versions[0].Files[0].FileName)
}

func TestGetProductUseCase_Execute_BySIDFallback(t *testing.T) {
	productRepo := &fakeProductRepo{}
	seedProduct(t, productRepo, pvo.StatusApproved)
	uc := newGetProductUseCase(productRepo, &fakeVersionRepo{}, &fakeFileRepo{})

	resp, err := uc.Execute(context.Background(), 0, "", "prod_abc123")

	require.NoError(t, err)
	assert.Equal(t, "prod_abc123", resp.SID)
	assert.Empty(t, resp.Versions)
}

func TestGetProductUseCase_Execute_PendingHiddenFromStrangers(t *testing.T) {
	productRepo := &fakeProductRepo{}
	seedProduct(t, productRepo, pvo.StatusPending)
	uc := newGetProductUseCase(productRepo, &fakeVersionRepo{}, &fakeFileRepo{})

	_, err := uc.Execute(context.Background(), 9, authorization.RoleBuyer, "prod_abc123")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetProductUseCase_Execute_PendingVisibleToOwner(t *testing.T) {
	productRepo := &fakeProductRepo{}
	seedProduct(t, productRepo, pvo.StatusPending)
	uc := newGetProductUseCase(productRepo, &fakeVersionRepo{}, &fakeFileRepo{})

	resp, err := uc.Execute(context.Background(), 2, authorization.RoleSeller, "prod_abc123")

	require.NoError(t, err)
	assert.Equal(t, pvo.StatusPending.String(), resp.Status)
}

func TestGetProductUseCase_Execute_PendingVisibleToAdmin(t *testing.T) {
	productRepo := &fakeProductRepo{}
	seedProduct(t, productRepo, pvo.StatusPending)
	uc := newGetProductUseCase(productRepo, &fakeVersionRepo{}, &fakeFileRepo{})

	_, err := uc.Execute(context.Background(), 1, authorization.RoleAdmin, "prod_abc123")

	assert.NoError(t, err)
}

func TestGetProductUseCase_Execute_UnknownProduct(t *testing.T) {
	uc := newGetProductUseCase(&fakeProductRepo{}, &fakeVersionRepo{}, &fakeFileRepo{})

	_, err := uc.Execute(context.Background(), 0, "", "no-such-product")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
