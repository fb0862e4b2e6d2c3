package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HmzT270/Inventory-Stock-Project/internal/model"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/logger"
	"github.com/HmzT270/Inventory-Stock-Project/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	Name               string `json:"name"`
	Quantity           int    `json:"quantity"`
	CategoryID         uint   `json:"categoryId"`
	BrandID            *uint  `json:"brandId"`
	Description        string `json:"description"`
	CriticalStockLevel int    `json:"criticalStockLevel"`
	CreatedBy          string `json:"createdBy"`
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Warn("Product name is required")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Product name must not be empty",
		})
	}
	if req.Quantity < 0 {
		log.Warn("Negative product quantity", zap.Int("quantity", req.Quantity))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Quantity must not be negative",
		})
	}
	if req.CategoryID == 0 {
		log.Warn("Missing category for new product", zap.String("name", req.Name))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "categoryId is required",
		})
	}

	// Unset critical level falls back to the catalog default
	criticalLevel := req.CriticalStockLevel
	if criticalLevel == 0 {
		criticalLevel = 10
	}

	product := model.Product{
		Name:               req.Name,
		Quantity:           req.Quantity,
		CategoryID:         req.CategoryID,
		BrandID:            req.BrandID,
		Description:        req.Description,
		CriticalStockLevel: criticalLevel,
		CreatedBy:          req.CreatedBy,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&product)
	if result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	prometheus.RecordProductOperation("create")
	prometheus.UpdateProductInventory(strconv.FormatUint(uint64(product.ID), 10), product.Name, float64(product.Quantity))

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// RenameProduct handles changing a product's name
func RenameProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Renaming product", zap.String("product_id", id))

	var req struct {
		NewName string `json:"newName"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strings.TrimSpace(req.NewName) == "" {
		log.Warn("Blank product name", zap.String("product_id", id))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "New product name must not be empty",
		})
	}

	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	oldName := product.Name
	product.Name = req.NewName
	if result := database.GetDB().Save(&product); result.Error != nil {
		log.Error("Failed to rename product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to rename product",
		})
	}

	prometheus.RecordProductOperation("rename")
	log.Info("Product renamed",
		zap.String("product_id", id),
		zap.String("old_name", oldName),
		zap.String("new_name", product.Name))
	return c.NoContent(http.StatusNoContent)
}

// UpdateProductDescription handles changing a product's description
func UpdateProductDescription(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating product description", zap.String("product_id", id))

	var req struct {
		NewDescription string `json:"newDescription"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strings.TrimSpace(req.NewDescription) == "" {
		log.Warn("Blank product description", zap.String("product_id", id))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Description must not be empty",
		})
	}

	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	product.Description = req.NewDescription
	if result := database.GetDB().Save(&product); result.Error != nil {
		log.Error("Failed to update description",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update description",
		})
	}

	prometheus.RecordProductOperation("update_description")
	return c.NoContent(http.StatusNoContent)
}

// ChangeProductCategory handles moving a product to another category
func ChangeProductCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Changing product category", zap.String("product_id", id))

	var req struct {
		CategoryID uint `json:"categoryId"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	if product.CategoryID == req.CategoryID {
		log.Warn("Category unchanged",
			zap.String("product_id", id),
			zap.Uint("category_id", req.CategoryID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Product is already in this category",
		})
	}

	oldCategoryID := product.CategoryID
	product.CategoryID = req.CategoryID
	if result := database.GetDB().Save(&product); result.Error != nil {
		log.Error("Failed to change category",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to change category",
		})
	}

	prometheus.RecordProductOperation("change_category")
	log.Info("Product category changed",
		zap.String("product_id", id),
		zap.Uint("old_category_id", oldCategoryID),
		zap.Uint("new_category_id", product.CategoryID))
	return c.NoContent(http.StatusNoContent)
}

// UpdateProductStock handles setting a product's quantity directly
func UpdateProductStock(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating product stock", zap.String("product_id", id))

	var req struct {
		NewQuantity int `json:"newQuantity"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil {
		log.Warn("Product not found", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	oldQuantity := product.Quantity
	product.Quantity = req.NewQuantity
	if result := database.GetDB().Save(&product); result.Error != nil {
		log.Error("Failed to update stock",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update stock",
		})
	}

	prometheus.RecordProductOperation("update_stock")
	prometheus.UpdateProductInventory(id, product.Name, float64(product.Quantity))

	log.Info("Product stock updated",
		zap.String("product_id", id),
		zap.Int("old_quantity", oldQuantity),
		zap.Int("new_quantity", product.Quantity))
	return c.JSON(http.StatusOK, product)
}

// UpdateAllCriticalStockLevels handles the bulk critical level update
func UpdateAllCriticalStockLevels(c echo.Context) error {
	log := logger.FromContext(c)

	newLevel, err := strconv.Atoi(c.Param("value"))
	if err != nil {
		log.Warn("Invalid critical level", zap.String("value", c.Param("value")))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Critical level must be an integer",
		})
	}
	if newLevel < 0 {
		log.Warn("Negative critical level", zap.Int("value", newLevel))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Critical level must not be negative",
		})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result := database.GetDB().Model(&model.Product{}).
		Where("1 = 1").
		Update("critical_stock_level", newLevel)
	if result.Error != nil {
		log.Error("Failed to update critical levels", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update critical stock levels",
		})
	}

	prometheus.RecordProductOperation("bulk_critical_level")
	log.Info("Critical stock levels updated",
		zap.Int("new_level", newLevel),
		zap.Int64("products_updated", result.RowsAffected))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Critical stock level updated for all products",
	})
}
