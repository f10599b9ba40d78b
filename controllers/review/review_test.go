package reviewControllers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/molch4nov/e-flower-shop-sub000/database"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func productRating(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, id).Error)
	return product.Rating
}

func TestRecalculateProductRating(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Email: "reviewer@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Rose Bouquet", Price: 1500}
	require.NoError(t, db.Create(&product).Error)

	first := models.Review{UserID: user.ID, ProductID: product.ID, Rating: 4}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, RecalculateProductRating(db, product.ID))
	assert.Equal(t, 4.0, productRating(t, db, product.ID))

	second := models.Review{UserID: user.ID, ProductID: product.ID, Rating: 5}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, RecalculateProductRating(db, product.ID))
	assert.Equal(t, 4.5, productRating(t, db, product.ID))

	// Updating a review moves the mean.
	require.NoError(t, db.Model(&first).Update("rating", 2).Error)
	require.NoError(t, RecalculateProductRating(db, product.ID))
	assert.Equal(t, 3.5, productRating(t, db, product.ID))

	// Deleting the last reviews resets the mean to zero.
	require.NoError(t, db.Delete(&first).Error)
	require.NoError(t, db.Delete(&second).Error)
	require.NoError(t, RecalculateProductRating(db, product.ID))
	assert.Equal(t, 0.0, productRating(t, db, product.ID))
}
