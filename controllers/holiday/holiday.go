package holidayControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

type HolidayInput struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"` // "MM-DD"
	Description string `json:"description"`
}

// GET /api/holidays
func GetHolidays(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var holidays []models.Holiday
		if err := db.Order("date").Find(&holidays).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch holidays"})
			return
		}
		c.JSON(http.StatusOK, holidays)
	}
}

// POST /api/holidays/admin
func CreateHoliday(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input HolidayInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		holiday := models.Holiday{Name: input.Name, Date: input.Date, Description: input.Description}
		if err := db.Create(&holiday).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create holiday"})
			return
		}
		c.JSON(http.StatusCreated, holiday)
	}
}

// PUT /api/holidays/admin/:id
func UpdateHoliday(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var holiday models.Holiday
		if err := db.First(&holiday, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Holiday not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch holiday"})
			return
		}

		var input HolidayInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&holiday).Updates(models.Holiday{
			Name:        input.Name,
			Date:        input.Date,
			Description: input.Description,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update holiday"})
			return
		}
		c.JSON(http.StatusOK, holiday)
	}
}

// DELETE /api/holidays/admin/:id
func DeleteHoliday(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Holiday{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete holiday"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Holiday not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted"})
	}
}
