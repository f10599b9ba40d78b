package productControllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/products/admin/export
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"ID", "Name", "Description", "Price", "Type", "Rating", "Purchases"} {
			header.AddCell().SetValue(title)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(string(p.Type))
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.PurchasesCount)
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

// POST /api/products/admin/import
// Expected columns: Name | Description | Price | Type
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}
		sheet := xlFile.Sheets[0]

		var imported int
		err = db.Transaction(func(tx *gorm.DB) error {
			for i := 1; i < sheet.MaxRow; i++ {
				row := sheet.Rows[i]
				if len(row.Cells) < 3 || row.Cells[0].String() == "" {
					continue
				}

				price, convErr := strconv.ParseFloat(row.Cells[2].String(), 64)
				if convErr != nil {
					return fmt.Errorf("row %d: invalid price %q", i+1, row.Cells[2].String())
				}

				productType := models.ProductTypeNormal
				if len(row.Cells) > 3 && row.Cells[3].String() == string(models.ProductTypeBouquet) {
					productType = models.ProductTypeBouquet
				}

				product := models.Product{
					Name:        row.Cells[0].String(),
					Description: row.Cells[1].String(),
					Price:       price,
					Type:        productType,
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				imported++
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"imported": imported})
	}
}
