// Package adminapi serves the admin console endpoints under /admin.
package adminapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// InitRouters registers all admin console routes with the web server.
func InitRouters() {
	registerAuthRoutes()
	registerDashboardRoutes()
	registerProductRoutes()
	registerOrderRoutes()
	registerCustomerRoutes()
	registerReviewRoutes()
	registerPromotionRoutes()
	registerShippingRoutes()
	registerContentRoutes()
	registerSupportRoutes()
}

// parsePagination reads page/perPage query params. The admin console lists
// default to 50 rows, matching what the frontends were built against.
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 50
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
