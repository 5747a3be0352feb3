package repository

import (
	"context"
	"testing"

	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func setupPreviewRepositoryTest(t *testing.T) (PreviewRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewPreviewRepository(testDB), testDB
}

func seedOwner(t *testing.T, testDB *gorm.DB) *model.Profile {
	owner := &model.Profile{
		ID:       "11111111-1111-1111-1111-111111111111",
		Username: "maria",
		FullName: strPtr("Maria Lopez"),
		Bio:      strPtr("Collector of nice things"),
	}
	require.NoError(t, testDB.Create(owner).Error)
	return owner
}

func seedWishlist(t *testing.T, testDB *gorm.DB, ownerID string) *model.Wishlist {
	wishlist := &model.Wishlist{
		OwnerID:       ownerID,
		Name:          "Birthday",
		Description:   strPtr("Things I would love"),
		CoverColorHex: strPtr("#667eea"),
		Privacy:       model.PrivacyPublic,
		ShareToken:    strPtr("tok-birthday"),
	}
	require.NoError(t, testDB.Create(wishlist).Error)
	return wishlist
}

func TestPreviewRepository_GetItemPreview(t *testing.T) {
	repo, testDB := setupPreviewRepositoryTest(t)
	owner := seedOwner(t, testDB)
	wishlist := seedWishlist(t, testDB, owner.ID)

	item := &model.WishlistItem{
		WishlistID:  wishlist.ID,
		Title:       strPtr("Noise-cancelling headphones"),
		PriceAmount: floatPtr(199.99),
	}
	require.NoError(t, testDB.Create(item).Error)

	preview, err := repo.GetItemPreview(context.Background(), item.ID)
	require.NoError(t, err)

	assert.Equal(t, item.ID, preview.ID)
	assert.Equal(t, "Noise-cancelling headphones", preview.Title)
	assert.Nil(t, preview.Description)
	require.NotNil(t, preview.PriceAmount)
	assert.InDelta(t, 199.99, *preview.PriceAmount, 0.001)
	assert.Equal(t, "maria", preview.OwnerUsername)
	require.NotNil(t, preview.WishlistName)
	assert.Equal(t, "Birthday", *preview.WishlistName)
	require.NotNil(t, preview.WishlistToken)
	assert.Equal(t, "tok-birthday", *preview.WishlistToken)
}

func TestPreviewRepository_GetItemPreview_UntitledItem(t *testing.T) {
	repo, testDB := setupPreviewRepositoryTest(t)
	owner := seedOwner(t, testDB)
	wishlist := seedWishlist(t, testDB, owner.ID)

	item := &model.WishlistItem{WishlistID: wishlist.ID}
	require.NoError(t, testDB.Create(item).Error)

	preview, err := repo.GetItemPreview(context.Background(), item.ID)
	require.NoError(t, err)

	// NULL titles coalesce to an empty string so callers only deal with one
	// missing-title shape.
	assert.Equal(t, "", preview.Title)
}

func TestPreviewRepository_GetItemPreview_NotFound(t *testing.T) {
	repo, _ := setupPreviewRepositoryTest(t)

	preview, err := repo.GetItemPreview(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, preview)
}

func TestPreviewRepository_GetProfilePreview(t *testing.T) {
	repo, testDB := setupPreviewRepositoryTest(t)
	seedOwner(t, testDB)

	preview, err := repo.GetProfilePreview(context.Background(), "maria")
	require.NoError(t, err)

	assert.Equal(t, "maria", preview.Username)
	require.NotNil(t, preview.FullName)
	assert.Equal(t, "Maria Lopez", *preview.FullName)
	assert.Equal(t, "Maria Lopez", preview.DisplayName())
}

func TestPreviewRepository_GetProfilePreview_NotFound(t *testing.T) {
	repo, _ := setupPreviewRepositoryTest(t)

	preview, err := repo.GetProfilePreview(context.Background(), "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, preview)
}

func TestPreviewRepository_GetWishlistPreview(t *testing.T) {
	repo, testDB := setupPreviewRepositoryTest(t)
	owner := seedOwner(t, testDB)
	wishlist := seedWishlist(t, testDB, owner.ID)

	for i := 0; i < 3; i++ {
		require.NoError(t, testDB.Create(&model.WishlistItem{WishlistID: wishlist.ID}).Error)
	}

	preview, err := repo.GetWishlistPreview(context.Background(), "tok-birthday")
	require.NoError(t, err)

	assert.Equal(t, "tok-birthday", preview.ShareToken)
	assert.Equal(t, "Birthday", preview.Name)
	assert.Equal(t, model.PrivacyPublic, preview.Privacy)
	assert.Equal(t, 3, preview.ItemCount)
	assert.Equal(t, "maria", preview.OwnerUsername)
}

func TestPreviewRepository_GetWishlistPreview_NotFound(t *testing.T) {
	repo, _ := setupPreviewRepositoryTest(t)

	preview, err := repo.GetWishlistPreview(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, preview)
}

func TestPreviewRepository_ListPublicWishlistTokens(t *testing.T) {
	repo, testDB := setupPreviewRepositoryTest(t)
	owner := seedOwner(t, testDB)

	public := seedWishlist(t, testDB, owner.ID)
	_ = public

	unlisted := &model.Wishlist{
		OwnerID:    owner.ID,
		Name:       "Secret",
		Privacy:    model.PrivacyUnlisted,
		ShareToken: strPtr("tok-secret"),
	}
	require.NoError(t, testDB.Create(unlisted).Error)

	tokens, err := repo.ListPublicWishlistTokens(context.Background())
	require.NoError(t, err)

	// Only public wishlists may be advertised to crawlers.
	assert.Equal(t, []string{"tok-birthday"}, tokens)
}

func TestPreviewRepository_ListUsernames(t *testing.T) {
	repo, testDB := setupPreviewRepositoryTest(t)
	seedOwner(t, testDB)

	usernames, err := repo.ListUsernames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"maria"}, usernames)
}
