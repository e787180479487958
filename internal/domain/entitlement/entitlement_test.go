package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntitlement(t *testing.T, downloadCount int, lastDownloadAt *time.Time) *Entitlement {
	t.Helper()
	e, err := ReconstructEntitlement(
		1, "ent_test123", 10, 20, 30, 40,
		true, downloadCount, lastDownloadAt,
		time.Now().Add(-48*time.Hour), time.Now(),
	)
	require.NoError(t, err)
	return e
}

func TestNewEntitlement(t *testing.T) {
	e, err := NewEntitlement("ent_abc", 1, 2, 3, 4)
	require.NoError(t, err)

	assert.True(t, e.IsActive())
	assert.Equal(t, 0, e.DownloadCount())
	assert.Nil(t, e.LastDownloadAt())
}

func TestNewEntitlementValidation(t *testing.T) {
	_, err := NewEntitlement("", 1, 2, 3, 4)
	assert.Error(t, err)

	_, err = NewEntitlement("ent_abc", 0, 2, 3, 4)
	assert.Error(t, err)

	_, err = NewEntitlement("ent_abc", 1, 2, 3, 0)
	assert.Error(t, err)
}

func TestCheckDownloadAllowedFirstDownload(t *testing.T) {
	e := testEntitlement(t, 0, nil)
	assert.NoError(t, e.CheckDownloadAllowed(time.Now(), 10))
}

func TestCheckDownloadAllowedUnderLimit(t *testing.T) {
	last := time.Now().Add(-1 * time.Hour)
	e := testEntitlement(t, 5, &last)
	assert.NoError(t, e.CheckDownloadAllowed(time.Now(), 10))
}

func TestCheckDownloadAllowedAtLimitSameDay(t *testing.T) {
	last := time.Now().Add(-1 * time.Hour)
	e := testEntitlement(t, 10, &last)

	err := e.CheckDownloadAllowed(time.Now(), 10)
	assert.ErrorIs(t, err, ErrDownloadLimitReached)
}

func TestCheckDownloadAllowedWindowResetsAfterFullDay(t *testing.T) {
	// The historical arithmetic treats the counter as reset once a full day
	// has elapsed since the previous download, regardless of calendar day.
	last := time.Now().Add(-25 * time.Hour)
	e := testEntitlement(t, 10, &last)

	assert.NoError(t, e.CheckDownloadAllowed(time.Now(), 10))
}

func TestCheckDownloadAllowedJustInsideWindow(t *testing.T) {
	last := time.Now().Add(-23 * time.Hour)
	e := testEntitlement(t, 10, &last)

	err := e.CheckDownloadAllowed(time.Now(), 10)
	assert.ErrorIs(t, err, ErrDownloadLimitReached)
}

func TestCheckDownloadAllowedInactive(t *testing.T) {
	e := testEntitlement(t, 0, nil)
	e.Deactivate()

	err := e.CheckDownloadAllowed(time.Now(), 10)
	assert.ErrorIs(t, err, ErrEntitlementInactive)
}

func TestRecordDownloadMonotonic(t *testing.T) {
	e := testEntitlement(t, 3, nil)

	at := time.Now()
	e.RecordDownload(at)

	assert.Equal(t, 4, e.DownloadCount())
	require.NotNil(t, e.LastDownloadAt())
	assert.Equal(t, at, *e.LastDownloadAt())

	later := at.Add(time.Minute)
	e.RecordDownload(later)
	assert.Equal(t, 5, e.DownloadCount())
	assert.Equal(t, later, *e.LastDownloadAt())
}

func TestDeactivate(t *testing.T) {
	e := testEntitlement(t, 0, nil)
	e.Deactivate()
	assert.False(t, e.IsActive())
}

func TestDownloadTokenValidate(t *testing.T) {
	tok, err := NewDownloadToken("hash", 1, 2, 3, "products/1/file.xsq", DefaultTokenTTL)
	require.NoError(t, err)

	assert.NoError(t, tok.Validate(time.Now()))
	assert.ErrorIs(t, tok.Validate(time.Now().Add(6*time.Minute)), ErrTokenExpired)
}

func TestDownloadTokenSingleUse(t *testing.T) {
	tok, err := NewDownloadToken("hash", 1, 2, 3, "products/1/file.xsq", DefaultTokenTTL)
	require.NoError(t, err)

	require.NoError(t, tok.MarkUsed(time.Now()))
	assert.ErrorIs(t, tok.MarkUsed(time.Now()), ErrTokenAlreadyUsed)
	assert.ErrorIs(t, tok.Validate(time.Now()), ErrTokenAlreadyUsed)
}

func TestDownloadTokenDefaultTTL(t *testing.T) {
	before := time.Now()
	tok, err := NewDownloadToken("hash", 1, 2, 3, "key", 0)
	require.NoError(t, err)

	ttl := tok.ExpiresAt().Sub(before)
	assert.InDelta(t, DefaultTokenTTL.Seconds(), ttl.Seconds(), 1)
}
