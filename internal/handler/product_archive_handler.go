package handler

import (
	"net/http"
	"time"

	"github.com/HmzT270/Inventory-Stock-Project/internal/model"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/logger"
	"github.com/HmzT270/Inventory-Stock-Project/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentDeletedLimit = 10

// DeleteProduct moves a product out of the active catalog into the
// archive. The archive record denormalizes category and brand names at
// deletion time, so later renames do not change the historical text.
// The product's movements and favorites go with it.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting product", zap.String("product_id", id))

	// The body is optional; only deletedBy is read from it
	var req struct {
		DeletedBy string `json:"deletedBy"`
	}
	_ = c.Bind(&req)

	var product model.Product
	result := database.GetDB().
		Preload("Category").
		Preload("Brand").
		First(&product, id)
	if result.Error != nil {
		log.Warn("Product not found for deletion", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	brandName := ""
	if product.Brand != nil {
		brandName = product.Brand.Name
	}

	archived := model.DeletedProduct{
		Name:              product.Name,
		Description:       product.Description,
		Quantity:          product.Quantity,
		DeletedAt:         time.Now(),
		OriginalProductID: product.ID,
		CategoryName:      product.Category.Name,
		BrandName:         brandName,
		DeletedBy:         req.DeletedBy,
		CreatedBy:         product.CreatedBy,
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.StockMovement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.ProductFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		log.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	prometheus.RecordProductOperation("delete")
	log.Info("Product archived",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("deleted_by", req.DeletedBy))
	return c.NoContent(http.StatusNoContent)
}

// RestoreProduct re-creates an archived product. Category and brand are
// re-resolved by exact name match; if either no longer exists the restore
// is aborted and the archive record is kept, so the operation can be
// retried once the category or brand is recreated.
func RestoreProduct(c echo.Context) error {
	log := logger.FromContext(c)
	originalID := c.Param("originalId")
	log.Info("Restoring product", zap.String("original_product_id", originalID))

	var archived model.DeletedProduct
	result := database.GetDB().
		Where("original_product_id = ?", originalID).
		Order("deleted_at DESC").
		First(&archived)
	if result.Error != nil {
		log.Warn("No archive record found", zap.String("original_product_id", originalID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Deleted product not found",
		})
	}

	// Re-resolve the category by name
	var category model.Category
	if err := database.GetDB().Where("name = ?", archived.CategoryName).First(&category).Error; err != nil {
		log.Warn("Archived category no longer exists",
			zap.String("original_product_id", originalID),
			zap.String("category_name", archived.CategoryName))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Cannot restore: the product's category no longer exists",
		})
	}

	// Re-resolve the brand by name if one was recorded
	var brandID *uint
	if archived.BrandName != "" {
		var brand model.Brand
		if err := database.GetDB().Where("name = ?", archived.BrandName).First(&brand).Error; err != nil {
			log.Warn("Archived brand no longer exists",
				zap.String("original_product_id", originalID),
				zap.String("brand_name", archived.BrandName))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Cannot restore: the product's brand no longer exists",
			})
		}
		brandID = &brand.ID
	}

	restored := model.Product{
		Name:               archived.Name,
		Quantity:           archived.Quantity,
		Description:        archived.Description,
		CreatedAt:          time.Now(),
		CategoryID:         category.ID,
		BrandID:            brandID,
		CriticalStockLevel: 10,
		CreatedBy:          archived.CreatedBy,
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restored).Error; err != nil {
			return err
		}
		return tx.Delete(&archived).Error
	})
	if err != nil {
		log.Error("Failed to restore product",
			zap.String("original_product_id", originalID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to restore product",
		})
	}

	prometheus.RecordProductOperation("restore")
	log.Info("Product restored",
		zap.String("original_product_id", originalID),
		zap.Uint("new_product_id", restored.ID),
		zap.String("name", restored.Name))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product restored successfully",
		"product": restored,
	})
}

// ListRecentDeleted returns the most recently archived products
func ListRecentDeleted(c echo.Context) error {
	log := logger.FromContext(c)

	deleted := make([]model.DeletedProduct, 0)
	result := database.GetDB().
		Order("deleted_at DESC").
		Limit(recentDeletedLimit).
		Find(&deleted)
	if result.Error != nil {
		log.Error("Failed to list deleted products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve deleted products",
		})
	}

	log.Info("Deleted products retrieved", zap.Int("count", len(deleted)))
	return c.JSON(http.StatusOK, deleted)
}
