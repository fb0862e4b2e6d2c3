package prometheus

import (
	"time"

	"github.com/HmzT270/Inventory-Stock-Project/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	LoginCounter       prometheus.Counter
	RegisterCounter    prometheus.Counter
	AuthErrorsCounter  prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Domain operation metrics
	ProductOperationsCounter  prometheus.CounterVec
	CategoryOperationsCounter prometheus.CounterVec
	BrandOperationsCounter    prometheus.CounterVec
	StockMovementsCounter     prometheus.CounterVec
	FavoriteTogglesCounter    prometheus.CounterVec

	// Inventory metrics
	ProductInventoryGauge prometheus.GaugeVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	LoginCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	RegisterCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_register_attempts_total",
			Help: "Total number of registration attempts",
		},
	)

	AuthErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Product metrics
	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation"},
	)

	// Category metrics
	CategoryOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_category_operations_total",
			Help: "Total number of category operations",
		},
		[]string{"operation"},
	)

	// Brand metrics
	BrandOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_brand_operations_total",
			Help: "Total number of brand operations",
		},
		[]string{"operation"},
	)

	// Stock ledger metrics
	StockMovementsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_stock_movements_total",
			Help: "Total number of recorded stock movements",
		},
		[]string{"movement_type"},
	)

	// Favorite registry metrics
	FavoriteTogglesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_favorite_toggles_total",
			Help: "Total number of favorite toggle operations",
		},
		[]string{"result"},
	)

	// Product inventory metrics
	ProductInventoryGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_product_inventory",
			Help: "Current inventory level for products",
		},
		[]string{"product_id", "product_name"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCategoryOperation increments the counter for category operations
func RecordCategoryOperation(operation string) {
	CategoryOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordBrandOperation increments the counter for brand operations
func RecordBrandOperation(operation string) {
	BrandOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordStockMovement increments the counter for recorded movements
func RecordStockMovement(movementType string) {
	StockMovementsCounter.WithLabelValues(movementType).Inc()
}

// RecordFavoriteToggle increments the counter for favorite toggles
func RecordFavoriteToggle(result string) {
	FavoriteTogglesCounter.WithLabelValues(result).Inc()
}

// RecordAuthError increments the counter for authentication errors
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// UpdateProductInventory updates the gauge for product inventory
func UpdateProductInventory(productID string, productName string, count float64) {
	ProductInventoryGauge.WithLabelValues(productID, productName).Set(count)
}
