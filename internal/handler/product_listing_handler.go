package handler

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/HmzT270/Inventory-Stock-Project/internal/model"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"
	"github.com/HmzT270/Inventory-Stock-Project/pkg/logger"
	"github.com/HmzT270/Inventory-Stock-Project/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductView is a single row of the product listing: the product joined
// with its category and brand names, the movement count, and the per-user
// favorite flag. SerialNumber is 1-based and reflects fetch order.
type ProductView struct {
	SerialNumber       int       `json:"serialNumber"`
	ProductID          uint      `json:"productId"`
	Name               string    `json:"name"`
	Quantity           int       `json:"quantity"`
	CategoryID         uint      `json:"categoryId"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"createdAt"`
	CriticalStockLevel int       `json:"criticalStockLevel"`
	BrandID            *uint     `json:"brandId"`
	CreatedBy          string    `json:"createdBy"`
	IsFavorite         bool      `json:"isFavorite"`
	Category           string    `json:"category"`
	Brand              string    `json:"brand"`
	StockMovementCount int       `json:"stockMovementCount"`
}

// buildProductViews maps products onto listing rows, assigning serial
// numbers in slice order and marking the user's favorites.
func buildProductViews(products []model.Product, favorites map[uint]bool) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i, p := range products {
		brand := ""
		if p.Brand != nil {
			brand = p.Brand.Name
		}
		views = append(views, ProductView{
			SerialNumber:       i + 1,
			ProductID:          p.ID,
			Name:               p.Name,
			Quantity:           p.Quantity,
			CategoryID:         p.CategoryID,
			Description:        p.Description,
			CreatedAt:          p.CreatedAt,
			CriticalStockLevel: p.CriticalStockLevel,
			BrandID:            p.BrandID,
			CreatedBy:          p.CreatedBy,
			IsFavorite:         favorites[p.ID],
			Category:           p.Category.Name,
			Brand:              brand,
			StockMovementCount: len(p.StockMovements),
		})
	}
	return views
}

// userFavoriteSet loads the set of product IDs the user has favorited.
// An empty userId yields an empty set.
func userFavoriteSet(userID string) (map[uint]bool, error) {
	favorites := make(map[uint]bool)
	if userID == "" {
		return favorites, nil
	}

	var ids []uint
	result := database.GetDB().Model(&model.ProductFavorite{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	for _, id := range ids {
		favorites[id] = true
	}
	return favorites, nil
}

// ListProducts handles retrieving all products with joined names and movement counts
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing products")

	var products []model.Product
	result := database.GetDB().
		Preload("Category").
		Preload("Brand").
		Preload("StockMovements").
		Order("id").
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, buildProductViews(products, nil))
}

// ListSortedProducts handles the sorted and favorite-annotated product listing
func ListSortedProducts(c echo.Context) error {
	log := logger.FromContext(c)

	orderBy := strings.ToLower(c.QueryParam("orderBy"))
	direction := strings.ToLower(c.QueryParam("direction"))
	userID := c.QueryParam("userId")
	if orderBy == "" {
		orderBy = "serialnumber"
	}
	if direction == "" {
		direction = "asc"
	}

	log.Info("Listing sorted products",
		zap.String("order_by", orderBy),
		zap.String("direction", direction),
		zap.String("user_id", userID))

	var products []model.Product
	result := database.GetDB().
		Preload("Category").
		Preload("Brand").
		Preload("StockMovements").
		Order("id").
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	favorites, err := userFavoriteSet(userID)
	if err != nil {
		log.Error("Failed to load favorites", zap.String("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	views := buildProductViews(products, favorites)
	sortProductViews(views, orderBy, direction)

	log.Info("Sorted products retrieved", zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// sortProductViews orders listing rows by the requested field and
// direction. Unrecognized field/direction pairs keep the fetch order,
// which is the serial-number ascending default. The sort is stable, so
// ties keep fetch order.
func sortProductViews(views []ProductView, orderBy, direction string) {
	var less func(a, b ProductView) bool

	switch orderBy {
	case "name":
		less = func(a, b ProductView) bool { return a.Name < b.Name }
	case "serialnumber":
		less = func(a, b ProductView) bool { return a.SerialNumber < b.SerialNumber }
	case "quantity":
		less = func(a, b ProductView) bool { return a.Quantity < b.Quantity }
	case "category":
		less = func(a, b ProductView) bool { return a.Category < b.Category }
	case "brand":
		less = func(a, b ProductView) bool { return a.Brand < b.Brand }
	case "createdat":
		less = func(a, b ProductView) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	switch direction {
	case "asc":
		sort.SliceStable(views, func(i, j int) bool { return less(views[i], views[j]) })
	case "desc":
		sort.SliceStable(views, func(i, j int) bool { return less(views[j], views[i]) })
	}
}

// SearchProductsByName handles case-insensitive substring search on product names
func SearchProductsByName(c echo.Context) error {
	log := logger.FromContext(c)

	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		log.Warn("Empty search query")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Search query must not be empty",
		})
	}

	log.Info("Searching products by name", zap.String("query", query))

	var products []model.Product
	result := database.GetDB().
		Preload("Category").
		Preload("Brand").
		Preload("StockMovements").
		Where("lower(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name").
		Limit(20).
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to search products", zap.String("query", query), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to search products",
		})
	}

	log.Info("Search completed", zap.String("query", query), zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, buildProductViews(products, nil))
}

// ListProductsByCategory handles retrieving products in one category
func ListProductsByCategory(c echo.Context) error {
	log := logger.FromContext(c)
	categoryID := c.Param("categoryId")
	log.Info("Listing products by category", zap.String("category_id", categoryID))

	var products []model.Product
	result := database.GetDB().
		Preload("Category").
		Preload("Brand").
		Preload("StockMovements").
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products by category",
			zap.String("category_id", categoryID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully",
		zap.String("category_id", categoryID),
		zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, buildProductViews(products, nil))
}

// ListProductsByBrand handles retrieving products of one brand
func ListProductsByBrand(c echo.Context) error {
	log := logger.FromContext(c)
	brandID := c.Param("brandId")
	log.Info("Listing products by brand", zap.String("brand_id", brandID))

	var products []model.Product
	result := database.GetDB().
		Preload("Category").
		Preload("Brand").
		Preload("StockMovements").
		Where("brand_id = ?", brandID).
		Order("id").
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products by brand",
			zap.String("brand_id", brandID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully",
		zap.String("brand_id", brandID),
		zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, buildProductViews(products, nil))
}

// GetAnyProduct returns the first product in the catalog, used by the
// frontend as a cheap non-empty probe
func GetAnyProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var product model.Product
	result := database.GetDB().
		Preload("Brand").
		Order("id").
		First(&product)
	if result.Error != nil {
		log.Warn("No products in catalog")
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "No products found",
		})
	}

	brand := ""
	if product.Brand != nil {
		brand = product.Brand.Name
	}

	prometheus.RecordProductOperation("get_any")
	return c.JSON(http.StatusOK, echo.Map{
		"productId":          product.ID,
		"name":               product.Name,
		"criticalStockLevel": product.CriticalStockLevel,
		"createdBy":          product.CreatedBy,
		"brand":              brand,
	})
}
