package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/app/repository"
	"github.com/noto-space/noto-web/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// countingPreviewRepo wraps nothing; it fails every call and records how
// often the service actually reached for the backend.
type countingPreviewRepo struct {
	calls int
	err   error
}

func (r *countingPreviewRepo) GetItemPreview(ctx context.Context, itemID uint) (*model.ItemPreview, error) {
	r.calls++
	return nil, r.err
}

func (r *countingPreviewRepo) GetProfilePreview(ctx context.Context, username string) (*model.ProfilePreview, error) {
	r.calls++
	return nil, r.err
}

func (r *countingPreviewRepo) GetWishlistPreview(ctx context.Context, shareToken string) (*model.WishlistPreview, error) {
	r.calls++
	return nil, r.err
}

func (r *countingPreviewRepo) ListPublicWishlistTokens(ctx context.Context) ([]string, error) {
	r.calls++
	return nil, r.err
}

func (r *countingPreviewRepo) ListUsernames(ctx context.Context) ([]string, error) {
	r.calls++
	return nil, r.err
}

func setupPreviewServiceTest(t *testing.T) (PreviewService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	previewRepo := repository.NewPreviewRepository(testDB)
	return NewPreviewService(previewRepo), testDB
}

func seedItem(t *testing.T, testDB *gorm.DB) *model.WishlistItem {
	owner := &model.Profile{
		ID:       "22222222-2222-2222-2222-222222222222",
		Username: "maria",
	}
	require.NoError(t, testDB.Create(owner).Error)

	wishlist := &model.Wishlist{
		OwnerID:    owner.ID,
		Name:       "Birthday",
		Privacy:    model.PrivacyPublic,
		ShareToken: strPtr("tok-birthday"),
	}
	require.NoError(t, testDB.Create(wishlist).Error)

	item := &model.WishlistItem{
		WishlistID: wishlist.ID,
		Title:      strPtr("Noise-cancelling headphones"),
	}
	require.NoError(t, testDB.Create(item).Error)
	return item
}

func TestPreviewService_ResolveItem(t *testing.T) {
	previewService, testDB := setupPreviewServiceTest(t)
	item := seedItem(t, testDB)

	preview, err := previewService.ResolveItem(context.Background(), fmt.Sprintf("%d", item.ID))
	require.NoError(t, err)
	assert.Equal(t, item.ID, preview.ID)
	assert.Equal(t, "Noise-cancelling headphones", preview.Title)
}

func TestPreviewService_ResolveItem_InvalidIdentifier(t *testing.T) {
	repo := &countingPreviewRepo{err: gorm.ErrRecordNotFound}
	previewService := NewPreviewService(repo)

	tests := []struct {
		name       string
		identifier string
	}{
		{name: "Empty", identifier: ""},
		{name: "Non-numeric", identifier: "abc"},
		{name: "Negative", identifier: "-1"},
		{name: "Float", identifier: "1.5"},
		{name: "Trailing garbage", identifier: "42x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview, err := previewService.ResolveItem(context.Background(), tt.identifier)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
			assert.Nil(t, preview)
		})
	}

	// Malformed identifiers must never reach the backend.
	assert.Equal(t, 0, repo.calls)
}

func TestPreviewService_ResolveItem_NotFound(t *testing.T) {
	previewService, _ := setupPreviewServiceTest(t)

	preview, err := previewService.ResolveItem(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrPreviewNotFound)
	assert.Nil(t, preview)
}

func TestPreviewService_ResolveItem_BackendUnavailable(t *testing.T) {
	repo := &countingPreviewRepo{err: errors.New("dial tcp: connection refused")}
	previewService := NewPreviewService(repo)

	preview, err := previewService.ResolveItem(context.Background(), "42")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Nil(t, preview)
	assert.Equal(t, 1, repo.calls)
}

func TestPreviewService_ResolveProfile(t *testing.T) {
	previewService, testDB := setupPreviewServiceTest(t)
	seedItem(t, testDB)

	preview, err := previewService.ResolveProfile(context.Background(), "maria")
	require.NoError(t, err)
	assert.Equal(t, "maria", preview.Username)

	_, err = previewService.ResolveProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrPreviewNotFound)

	_, err = previewService.ResolveProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestPreviewService_ResolveWishlist(t *testing.T) {
	previewService, testDB := setupPreviewServiceTest(t)
	seedItem(t, testDB)

	preview, err := previewService.ResolveWishlist(context.Background(), "tok-birthday")
	require.NoError(t, err)
	assert.Equal(t, "Birthday", preview.Name)
	assert.Equal(t, 1, preview.ItemCount)

	_, err = previewService.ResolveWishlist(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrPreviewNotFound)

	_, err = previewService.ResolveWishlist(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestParseItemID(t *testing.T) {
	id, err := ParseItemID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseItemID("forty-two")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
