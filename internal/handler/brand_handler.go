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

// BrandRequest defines the structure for brand creation/update requests
type BrandRequest struct {
	BrandID uint   `json:"brandId"`
	Name    string `json:"name"`
}

// ListBrands retrieves all brands
func ListBrands(c echo.Context) error {
	log := logger.FromContext(c)

	var brands []model.Brand
	result := database.GetDB().Order("id").Find(&brands)
	if result.Error != nil {
		log.Error("Failed to retrieve brands", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve brands",
		})
	}

	log.Info("Brands retrieved successfully", zap.Int("count", len(brands)))
	return c.JSON(http.StatusOK, brands)
}

// GetBrand retrieves a specific brand by ID
func GetBrand(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var brand model.Brand
	result := database.GetDB().First(&brand, id)
	if result.Error != nil {
		log.Warn("Brand not found", zap.String("brand_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Brand not found",
		})
	}

	return c.JSON(http.StatusOK, brand)
}

// CreateBrand adds a new brand
func CreateBrand(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new brand")

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strings.TrimSpace(req.Name) == "" {
		log.Warn("Brand name is required")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Brand name must not be empty",
		})
	}

	brand := model.Brand{Name: req.Name}
	result := database.GetDB().Create(&brand)
	if result.Error != nil {
		log.Error("Failed to create brand",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create brand",
		})
	}

	prometheus.RecordBrandOperation("create")
	log.Info("Brand created successfully",
		zap.String("brand_id", strconv.FormatUint(uint64(brand.ID), 10)),
		zap.String("name", brand.Name))
	return c.JSON(http.StatusCreated, brand)
}

// UpdateBrand replaces a brand. The path ID and body ID must match.
func UpdateBrand(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("brand_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strconv.FormatUint(uint64(req.BrandID), 10) != id {
		log.Warn("Brand id mismatch",
			zap.String("path_id", id),
			zap.Uint("body_id", req.BrandID))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Brand id mismatch",
		})
	}

	var brand model.Brand
	result := database.GetDB().First(&brand, id)
	if result.Error != nil {
		log.Warn("Brand not found", zap.String("brand_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Brand not found",
		})
	}

	brand.Name = req.Name
	if result := database.GetDB().Save(&brand); result.Error != nil {
		log.Error("Failed to update brand",
			zap.String("brand_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update brand",
		})
	}

	prometheus.RecordBrandOperation("update")
	return c.NoContent(http.StatusNoContent)
}

// RenameBrand changes only a brand's name
func RenameBrand(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req struct {
		NewName string `json:"newName"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("brand_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if strings.TrimSpace(req.NewName) == "" {
		log.Warn("Blank brand name", zap.String("brand_id", id))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "New brand name must not be empty",
		})
	}

	var brand model.Brand
	result := database.GetDB().First(&brand, id)
	if result.Error != nil {
		log.Warn("Brand not found", zap.String("brand_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Brand not found",
		})
	}

	oldName := brand.Name
	brand.Name = req.NewName
	if result := database.GetDB().Save(&brand); result.Error != nil {
		log.Error("Failed to rename brand",
			zap.String("brand_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to rename brand",
		})
	}

	prometheus.RecordBrandOperation("rename")
	log.Info("Brand renamed",
		zap.String("brand_id", id),
		zap.String("old_name", oldName),
		zap.String("new_name", brand.Name))
	return c.NoContent(http.StatusNoContent)
}

// DeleteBrand removes a brand
func DeleteBrand(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting brand", zap.String("brand_id", id))

	var brand model.Brand
	result := database.GetDB().First(&brand, id)
	if result.Error != nil {
		log.Warn("Brand not found", zap.String("brand_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Brand not found",
		})
	}

	if result := database.GetDB().Delete(&brand); result.Error != nil {
		log.Error("Failed to delete brand",
			zap.String("brand_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete brand",
		})
	}

	prometheus.RecordBrandOperation("delete")
	return c.NoContent(http.StatusNoContent)
}
