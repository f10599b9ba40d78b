package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/molch4nov/e-flower-shop-sub000/database"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"
)

// Seeds sample storefront data. Safe to run repeatedly: rows are looked up by
// name before insert.
func main() {
	_ = godotenv.Load()

	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}
	defer database.Close(db)

	counts := map[string]int{}

	category := ensureCategory(db, "Цветы", counts)
	subBouquets := ensureSubcategory(db, category.ID, "Букеты", counts)
	subSingle := ensureSubcategory(db, category.ID, "Поштучно", counts)

	rose := ensureFlower(db, "Роза", 150, counts)
	tulip := ensureFlower(db, "Тюльпан", 90, counts)
	peony := ensureFlower(db, "Пион", 220, counts)

	ensureProduct(db, models.Product{
		Name:          "Роза (1 шт)",
		Description:   "Одиночная красная роза",
		Price:         rose.Price,
		Type:          models.ProductTypeNormal,
		SubcategoryID: &subSingle.ID,
	}, nil, counts)

	ensureProduct(db, models.Product{
		Name:          "Букет «Весна»",
		Description:   "Тюльпаны и пионы",
		Type:          models.ProductTypeBouquet,
		SubcategoryID: &subBouquets.ID,
		// Price derived from the composition below.
	}, []models.BouquetFlower{
		{FlowerID: tulip.ID, Quantity: 7},
		{FlowerID: peony.ID, Quantity: 3},
	}, counts)

	ensureHoliday(db, "8 марта", "03-08", counts)
	ensureHoliday(db, "День матери", "11-30", counts)

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Entity", "Created")
	for _, name := range []string{"categories", "subcategories", "flowers", "products", "holidays"} {
		_ = table.Append([]string{name, fmt.Sprint(counts[name])})
	}
	_ = table.Render()
}

func ensureCategory(db *gorm.DB, name string, counts map[string]int) models.Category {
	var c models.Category
	if err := db.Where("name = ?", name).First(&c).Error; err == nil {
		return c
	}
	c = models.Category{Name: name}
	if err := db.Create(&c).Error; err != nil {
		log.Fatalf("seed category %q: %v", name, err)
	}
	counts["categories"]++
	return c
}

func ensureSubcategory(db *gorm.DB, categoryID uint, name string, counts map[string]int) models.Subcategory {
	var s models.Subcategory
	if err := db.Where("category_id = ? AND name = ?", categoryID, name).First(&s).Error; err == nil {
		return s
	}
	s = models.Subcategory{CategoryID: categoryID, Name: name}
	if err := db.Create(&s).Error; err != nil {
		log.Fatalf("seed subcategory %q: %v", name, err)
	}
	counts["subcategories"]++
	return s
}

func ensureFlower(db *gorm.DB, name string, price float64, counts map[string]int) models.Flower {
	var f models.Flower
	if err := db.Where("name = ?", name).First(&f).Error; err == nil {
		return f
	}
	f = models.Flower{Name: name, Price: price, InStock: true}
	if err := db.Create(&f).Error; err != nil {
		log.Fatalf("seed flower %q: %v", name, err)
	}
	counts["flowers"]++
	return f
}

func ensureProduct(db *gorm.DB, p models.Product, composition []models.BouquetFlower, counts map[string]int) {
	var existing models.Product
	if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if p.Type == models.ProductTypeBouquet && p.Price == 0 {
			for _, link := range composition {
				var flower models.Flower
				if err := tx.First(&flower, "id = ?", link.FlowerID).Error; err != nil {
					return err
				}
				p.Price += flower.Price * float64(link.Quantity)
			}
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		for _, link := range composition {
			link.BouquetID = p.ID
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("seed product %q: %v", p.Name, err)
	}
	counts["products"]++
}

func ensureHoliday(db *gorm.DB, name, date string, counts map[string]int) {
	var h models.Holiday
	if err := db.Where("name = ?", name).First(&h).Error; err == nil {
		return
	}
	h = models.Holiday{Name: name, Date: date}
	if err := db.Create(&h).Error; err != nil {
		log.Fatalf("seed holiday %q: %v", name, err)
	}
	counts["holidays"]++
}
