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
	"gorm.io/gorm"
)

// StockMovementRequest defines the structure for movement creation requests
type StockMovementRequest struct {
	ProductID    uint   `json:"productId"`
	MovementType string `json:"movementType"`
	Quantity     int    `json:"quantity"`
}

// ListStockMovements handles retrieving the full movement ledger
func ListStockMovements(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing stock movements")

	var movements []model.StockMovement
	result := database.GetDB().Preload("Product").Find(&movements)
	if result.Error != nil {
		log.Error("Failed to list stock movements", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve stock movements",
		})
	}

	log.Info("Stock movements retrieved", zap.Int("count", len(movements)))
	return c.JSON(http.StatusOK, movements)
}

// GetStockMovement handles retrieving a single movement by ID
func GetStockMovement(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var movement model.StockMovement
	result := database.GetDB().First(&movement, id)
	if result.Error != nil {
		log.Warn("Stock movement not found", zap.String("movement_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Stock movement not found",
		})
	}

	return c.JSON(http.StatusOK, movement)
}

// CreateStockMovement records a ledger entry and adjusts the product's
// quantity in the same transaction. The adjustment runs as an atomic
// quantity = quantity +/- delta update, so concurrent movements on the
// same product cannot lose each other's writes. Movements for unknown
// products are rejected rather than left as orphan ledger rows.
func CreateStockMovement(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Recording stock movement")

	var req StockMovementRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	movementType := strings.ToLower(req.MovementType)
	if movementType != model.MovementIn && movementType != model.MovementOut {
		log.Warn("Invalid movement type", zap.String("movement_type", req.MovementType))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "movementType must be 'in' or 'out'",
		})
	}
	if req.Quantity < 1 {
		log.Warn("Invalid movement quantity", zap.Int("quantity", req.Quantity))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Quantity must be at least 1",
		})
	}

	var product model.Product
	if err := database.GetDB().First(&product, req.ProductID).Error; err != nil {
		log.Warn("Product not found for movement", zap.Uint("product_id", req.ProductID))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	movement := model.StockMovement{
		ProductID:    req.ProductID,
		MovementType: movementType,
		Quantity:     req.Quantity,
		MovementDate: time.Now(),
	}

	delta := req.Quantity
	if movementType == model.MovementOut {
		delta = -delta
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}
		return tx.Model(&model.Product{}).
			Where("id = ?", req.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", delta)).Error
	})
	if err != nil {
		log.Error("Failed to record stock movement",
			zap.Uint("product_id", req.ProductID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to record stock movement",
		})
	}

	prometheus.RecordStockMovement(movementType)
	prometheus.UpdateProductInventory(
		strconv.FormatUint(uint64(product.ID), 10),
		product.Name,
		float64(product.Quantity+delta),
	)

	log.Info("Stock movement recorded",
		zap.Uint("movement_id", movement.ID),
		zap.Uint("product_id", req.ProductID),
		zap.String("movement_type", movementType),
		zap.Int("quantity", req.Quantity))
	return c.JSON(http.StatusCreated, movement)
}

// DeleteStockMovement removes one ledger entry. Administrative use only;
// the product's quantity is left as is.
func DeleteStockMovement(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting stock movement", zap.String("movement_id", id))

	var movement model.StockMovement
	result := database.GetDB().First(&movement, id)
	if result.Error != nil {
		log.Warn("Stock movement not found", zap.String("movement_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Stock movement not found",
		})
	}

	if result := database.GetDB().Delete(&movement); result.Error != nil {
		log.Error("Failed to delete stock movement",
			zap.String("movement_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete stock movement",
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMovementsByProduct returns all movements for one product. Products
// with no movements yield an empty array, never an error.
func ListMovementsByProduct(c echo.Context) error {
	log := logger.FromContext(c)
	productID := c.Param("productId")
	log.Info("Listing movements for product", zap.String("product_id", productID))

	movements := make([]model.StockMovement, 0)
	result := database.GetDB().
		Where("product_id = ?", productID).
		Find(&movements)
	if result.Error != nil {
		log.Error("Failed to list movements",
			zap.String("product_id", productID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve stock movements",
		})
	}

	log.Info("Movements retrieved",
		zap.String("product_id", productID),
		zap.Int("count", len(movements)))
	return c.JSON(http.StatusOK, movements)
}
