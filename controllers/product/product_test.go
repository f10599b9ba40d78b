package productControllers

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

func TestDeriveBouquetPrice(t *testing.T) {
	db := newTestDB(t)

	flowerA := models.Flower{Name: "A", Price: 100}
	require.NoError(t, db.Create(&flowerA).Error)
	flowerB := models.Flower{Name: "B", Price: 50}
	require.NoError(t, db.Create(&flowerB).Error)

	price, err := DeriveBouquetPrice(db, []BouquetFlowerInput{
		{FlowerID: flowerA.ID, Quantity: 2},
		{FlowerID: flowerB.ID, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 350.0, price)
}

func TestDeriveBouquetPrice_UnknownFlower(t *testing.T) {
	db := newTestDB(t)

	_, err := DeriveBouquetPrice(db, []BouquetFlowerInput{{FlowerID: 42, Quantity: 1}})
	assert.Error(t, err)
}

func TestBouquetPrice_NotRetroactive(t *testing.T) {
	db := newTestDB(t)

	rose := models.Flower{Name: "Rose", Price: 150}
	require.NoError(t, db.Create(&rose).Error)

	links := []BouquetFlowerInput{{FlowerID: rose.ID, Quantity: 5}}
	price, err := DeriveBouquetPrice(db, links)
	require.NoError(t, err)

	bouquet := models.Product{Name: "Red Five", Price: price, Type: models.ProductTypeBouquet}
	require.NoError(t, db.Create(&bouquet).Error)
	require.NoError(t, replaceBouquetFlowers(db, bouquet.ID, links))

	// Raising the flower price later leaves the bouquet untouched.
	require.NoError(t, db.Model(&rose).Update("price", 400).Error)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, bouquet.ID).Error)
	assert.Equal(t, 750.0, reloaded.Price)
}

func TestReplaceBouquetFlowers_RewritesComposition(t *testing.T) {
	db := newTestDB(t)

	tulip := models.Flower{Name: "Tulip", Price: 90}
	require.NoError(t, db.Create(&tulip).Error)
	peony := models.Flower{Name: "Peony", Price: 220}
	require.NoError(t, db.Create(&peony).Error)

	bouquet := models.Product{Name: "Spring", Price: 630, Type: models.ProductTypeBouquet}
	require.NoError(t, db.Create(&bouquet).Error)
	require.NoError(t, replaceBouquetFlowers(db, bouquet.ID, []BouquetFlowerInput{
		{FlowerID: tulip.ID, Quantity: 7},
	}))

	require.NoError(t, replaceBouquetFlowers(db, bouquet.ID, []BouquetFlowerInput{
		{FlowerID: peony.ID, Quantity: 3},
	}))

	var links []models.BouquetFlower
	require.NoError(t, db.Where("bouquet_id = ?", bouquet.ID).Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, peony.ID, links[0].FlowerID)
	assert.Equal(t, 3, links[0].Quantity)
}
