package fileControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

var unsafeNameChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// UploadFileHandler stores the uploaded file under uploadDir and records it in
// the files table. Optional entity_type/entity_id form fields bind the file
// to a product or category.
func UploadFileHandler(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		cleanName := unsafeNameChars.ReplaceAllString(fileHeader.Filename, "_")
		storedName := fmt.Sprintf("%s_%s", uuid.NewString(), cleanName)

		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
			return
		}
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadDir, storedName)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		entityType := c.PostForm("entity_type")
		var entityID uint
		if idStr := c.PostForm("entity_id"); idStr != "" {
			if id64, err := strconv.ParseUint(idStr, 10, 64); err == nil {
				entityID = uint(id64)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity_id"})
				return
			}
		}

		file := &models.File{
			Name:       fileHeader.Filename,
			StoredName: storedName,
			URL:        publicBaseURL + "/uploads/" + storedName,
			EntityType: entityType,
			EntityID:   entityID,
		}
		if err := models.SaveFile(db, file); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record file"})
			return
		}

		c.JSON(http.StatusCreated, file)
	}
}

// GET /api/files?entity_type=product&entity_id=1
func ListFilesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		entityType := c.Query("entity_type")
		idStr := c.Query("entity_id")
		if entityType == "" || idStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "entity_type and entity_id are required"})
			return
		}
		id64, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity_id"})
			return
		}

		files, err := models.FilesForEntity(db, entityType, uint(id64))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
			return
		}
		c.JSON(http.StatusOK, files)
	}
}

// DELETE /api/files/admin/:id
func DeleteFileHandler(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var file models.File
		if err := db.First(&file, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}

		if err := db.Delete(&file).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
			return
		}
		// Disk removal is best-effort; the row is the source of truth.
		_ = os.Remove(filepath.Join(uploadDir, file.StoredName))

		c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
	}
}
