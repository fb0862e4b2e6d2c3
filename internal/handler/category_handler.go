package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/HmzT270/Inventory-Stock-Project/internal/model"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/logger"
	"github.com/HmzT270/Inventory-Stock-Project/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryRequest defines the structure for category creation/update requests
type CategoryRequest struct {
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
}

// ListCategories retrieves all categories
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	var categories []model.Category
	result := database.GetDB().Order("id").Find(&categories)
	if result.Error != nil {
		log.Error("Failed to retrieve categories", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	log.Info("Categories retrieved successfully", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func GetCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var category model.Category
	result := database.GetDB().First(&category, id)
	if result.Error != nil {
		log.Warn("Category not found", zap.String("category_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Category not found",
		})
	}

	return c.JSON(http.StatusOK, category)
}

// CreateCategory adds a new category
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new category")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Warn("Category name is required")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Category name must not be empty",
		})
	}

	category := model.Category{Name: req.Name}
	result := database.GetDB().Create(&category)
	if result.Error != nil {
		log.Error("Failed to create category",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create category",
		})
	}

	prometheus.RecordCategoryOperation("create")
	log.Info("Category created successfully",
		zap.String("category_id", strconv.FormatUint(uint64(category.ID), 10)),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory replaces a category. The path ID and body ID must match.
func UpdateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("category_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strconv.FormatUint(uint64(req.CategoryID), 10) != id {
		log.Warn("Category id mismatch",
			zap.String("path_id", id),
			zap.Uint("body_id", req.CategoryID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Category id mismatch",
		})
	}

	var category model.Category
	result := database.GetDB().First(&category, id)
	if result.Error != nil {
		log.Warn("Category not found", zap.String("category_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Category not found",
		})
	}

	category.Name = req.Name
	if result := database.GetDB().Save(&category); result.Error != nil {
		log.Error("Failed to update category",
			zap.String("category_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update category",
		})
	}

	prometheus.RecordCategoryOperation("update")
	return c.NoContent(http.StatusNoContent)
}

// RenameCategory changes only a category's name
func RenameCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req struct {
		NewName string `json:"newName"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("category_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strings.TrimSpace(req.NewName) == "" {
		log.Warn("Blank category name", zap.String("category_id", id))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "New category name must not be empty",
		})
	}

	var category model.Category
	result := database.GetDB().First(&category, id)
	if result.Error != nil {
		log.Warn("Category not found", zap.String("category_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Category not found",
		})
	}

	oldName := category.Name
	category.Name = req.NewName
	if result := database.GetDB().Save(&category); result.Error != nil {
		log.Error("Failed to rename category",
			zap.String("category_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to rename category",
		})
	}

	prometheus.RecordCategoryOperation("rename")
	log.Info("Category renamed",
		zap.String("category_id", id),
		zap.String("old_name", oldName),
		zap.String("new_name", category.Name))
	return c.NoContent(http.StatusNoContent)
}

// DeleteCategory removes a category. Products referencing it are the
// caller's concern; the reference is not enforced here.
func DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting category", zap.String("category_id", id))

	var category model.Category
	result := database.GetDB().First(&category, id)
	if result.Error != nil {
		log.Warn("Category not found", zap.String("category_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Category not found",
		})
	}

	if result := database.GetDB().Delete(&category); result.Error != nil {
		log.Error("Failed to delete category",
			zap.String("category_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete category",
		})
	}

	prometheus.RecordCategoryOperation("delete")
	return c.NoContent(http.StatusNoContent)
}
