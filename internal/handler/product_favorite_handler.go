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

// ToggleFavorite flips the favorite flag for a (product, user) pair.
// The userId "null" is rejected: a frontend bug used to send it as a
// literal string for logged-out users.
func ToggleFavorite(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	userID := strings.TrimSpace(c.QueryParam("userId"))

	log.Info("Toggling favorite",
		zap.String("product_id", id),
		zap.String("user_id", userID))

	if userID == "" || strings.ToLower(userID) == "null" {
		log.Warn("Invalid userId for favorite toggle", zap.String("user_id", userID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "User not found",
		})
	}

	var favorite model.ProductFavorite
	result := database.GetDB().
		Where("product_id = ? AND user_id = ?", id, userID).
		First(&favorite)

	if result.Error != nil {
		// Not favorited yet: create the record
		productID, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			log.Warn("Invalid product id", zap.String("product_id", id))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Invalid product id",
			})
		}

		favorite = model.ProductFavorite{
			ProductID: uint(productID),
			UserID:    userID,
		}
		if err := database.GetDB().Create(&favorite).Error; err != nil {
			log.Error("Failed to create favorite",
				zap.String("product_id", id),
				zap.String("user_id", userID),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to toggle favorite",
			})
		}

		prometheus.RecordFavoriteToggle("favorited")
		log.Info("Product favorited",
			zap.String("product_id", id),
			zap.String("user_id", userID))
		return c.JSON(http.StatusOK, echo.Map{"success": true, "isFavorite": true})
	}

	// Already favorited: remove the record
	if err := database.GetDB().Delete(&favorite).Error; err != nil {
		log.Error("Failed to remove favorite",
			zap.String("product_id", id),
			zap.String("user_id", userID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to toggle favorite",
		})
	}

	prometheus.RecordFavoriteToggle("unfavorited")
	log.Info("Product unfavorited",
		zap.String("product_id", id),
		zap.String("user_id", userID))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "isFavorite": false})
}

// ClearFavorites removes every favorite record of one user
func ClearFavorites(c echo.Context) error {
	log := logger.FromContext(c)
	userID := c.QueryParam("userId")
	log.Info("Clearing favorites", zap.String("user_id", userID))

	var count int64
	database.GetDB().Model(&model.ProductFavorite{}).
		Where("user_id = ?", userID).
		Count(&count)
	if count == 0 {
		log.Info("No favorites to clear", zap.String("user_id", userID))
		return c.JSON(http.StatusOK, echo.Map{
			"success": false,
			"message": "This user has no favorites",
		})
	}

	result := database.GetDB().
		Where("user_id = ?", userID).
		Delete(&model.ProductFavorite{})
	if result.Error != nil {
		log.Error("Failed to clear favorites",
			zap.String("user_id", userID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to clear favorites",
		})
	}

	log.Info("Favorites cleared",
		zap.String("user_id", userID),
		zap.Int64("removed", result.RowsAffected))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "All favorites removed",
	})
}
