package handler

import (
	"net/http"

	"github.com/HmzT270/Inventory-Stock-Project/pkg/database"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	status := "healthy"
	code := http.StatusOK

	sqlDB, err := database.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, echo.Map{
		"status":  status,
		"service": "inventory-api",
	})
}
