package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerHealthRoutes() {
	webserver.PubGET("/", home)
	webserver.PubGET("/health", healthCheck)
}

func home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"api":      "Queen Koba Skincare",
		"version":  "2.0",
		"database": "PostgreSQL",
		"status":   "running",
	})
}

// healthCheck probes database connectivity and reports entity counts.
// The response shape is a deployment contract; the hosting platform and
// the runbook both check it.
func healthCheck(c echo.Context) error {
	db := webserver.GetDB(c)

	if err := db.Exec("SELECT 1").Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	var products, users, orders int64
	db.Model(&domain.Product{}).Count(&products)
	db.Model(&domain.User{}).Count(&users)
	db.Model(&domain.Order{}).Count(&orders)

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "healthy",
		"database": "connected",
		"counts": echo.Map{
			"products": products,
			"users":    users,
			"orders":   orders,
		},
	})
}
