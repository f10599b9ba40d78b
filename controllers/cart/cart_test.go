package cartControllers

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

func seedUserAndProduct(t *testing.T, db *gorm.DB, price float64) (models.User, models.Product) {
	t.Helper()
	user := models.User{Email: uuid.NewString() + "@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Rose " + uuid.NewString(), Price: price}
	require.NoError(t, db.Create(&product).Error)
	return user, product
}

func TestAddToCart_MergesQuantities(t *testing.T) {
	db := newTestDB(t)
	user, product := seedUserAndProduct(t, db, 150)

	first, err := AddToCart(db, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Quantity)

	second, err := AddToCart(db, user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, first.ID, second.ID, "same (user, product) row must be reused")

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", user.ID, product.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user, _ := seedUserAndProduct(t, db, 150)

	item, err := AddToCart(db, user.ID, 9999, 1)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateCartItem_NonPositiveQuantityRemoves(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{name: "zero removes", qty: 0},
		{name: "negative removes", qty: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			user, product := seedUserAndProduct(t, db, 150)

			item, err := AddToCart(db, user.ID, product.ID, 2)
			require.NoError(t, err)

			updated, err := UpdateCartItem(db, user.ID, item.ID, tt.qty)
			require.NoError(t, err)
			assert.Nil(t, updated)

			var count int64
			require.NoError(t, db.Model(&models.CartItem{}).
				Where("id = ?", item.ID).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestUpdateCartItem_SetsQuantityAbsolutely(t *testing.T) {
	db := newTestDB(t)
	user, product := seedUserAndProduct(t, db, 150)

	item, err := AddToCart(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	updated, err := UpdateCartItem(db, user.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
}

func TestCartTotal(t *testing.T) {
	db := newTestDB(t)
	user, product := seedUserAndProduct(t, db, 150)

	total, err := CartTotal(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total, "empty cart total must be zero, not NULL")

	_, err = AddToCart(db, user.ID, product.ID, 3)
	require.NoError(t, err)

	other := models.Product{Name: "Peony", Price: 220}
	require.NoError(t, db.Create(&other).Error)
	_, err = AddToCart(db, user.ID, other.ID, 2)
	require.NoError(t, err)

	total, err = CartTotal(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3*150.0+2*220.0, total)
}
