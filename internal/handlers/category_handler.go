package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faramide/eventra/internal/helpers"
	"github.com/faramide/eventra/internal/models"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required,eventcategory"`
}

// CreateCategory adds a category. Admin only; the name must come from
// the fixed category set.
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Name must be one of the supported event categories.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	category := models.Category{Name: req.Name}
	if err := gormDB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusConflict, "A category with this name already exists.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	helpers.Respond(c, http.StatusCreated, category)
}

// ListCategories returns a paginated category list, open to anyone.
func ListCategories(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	page, size, err := helpers.PageParams(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var categories []models.Category
	result, err := helpers.Paginate(gormDB.Model(&models.Category{}), "created_at DESC", page, size, &categories)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving categories.")
		return
	}

	helpers.Respond(c, http.StatusOK, result)
}

func GetCategory(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	category, ok := findCategoryBySlug(c, gormDB)
	if !ok {
		return
	}

	helpers.Respond(c, http.StatusOK, category)
}

// UpdateCategory renames a category; the slug is recomputed on save, so
// a rename changes the category's URL identity.
func UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Name must be one of the supported event categories.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	category, ok := findCategoryBySlug(c, gormDB)
	if !ok {
		return
	}

	category.Name = req.Name
	if err := gormDB.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusConflict, "A category with this name already exists.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update category.")
		return
	}

	helpers.Respond(c, http.StatusOK, category)
}

func DeleteCategory(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	category, ok := findCategoryBySlug(c, gormDB)
	if !ok {
		return
	}

	if err := gormDB.Model(category).Association("Events").Clear(); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category.")
		return
	}
	if err := gormDB.Delete(category).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category.")
		return
	}

	helpers.Respond(c, http.StatusOK, gin.H{"message": "Category deleted successfully."})
}

func findCategoryBySlug(c *gin.Context, gormDB *gorm.DB) (*models.Category, bool) {
	var category models.Category
	if err := gormDB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return nil, false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving category.")
		return nil, false
	}
	return &category, true
}
