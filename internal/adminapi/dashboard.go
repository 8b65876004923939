package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/pricing"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerDashboardRoutes() {
	webserver.AdminGET("/dashboard/kpis", getDashboardKpis)
}

func getDashboardKpis(c echo.Context) error {
	db := webserver.GetDB(c)
	thirtyDaysAgo := time.Now().Add(-30 * 24 * time.Hour)

	var totalRevenue float64
	db.Model(&domain.Order{}).
		Where("created_at >= ? AND payment_status = ?", thirtyDaysAgo, domain.PaymentStatusPaid).
		Select("COALESCE(SUM(total_usd), 0)").
		Scan(&totalRevenue)

	var totalOrders int64
	db.Model(&domain.Order{}).Where("created_at >= ?", thirtyDaysAgo).Count(&totalOrders)

	var totalCustomers int64
	db.Model(&domain.User{}).Where("role = ?", domain.RoleCustomer).Count(&totalCustomers)

	var lowStockItems int64
	db.Model(&domain.Product{}).Where("in_stock = ?", false).Count(&lowStockItems)

	var totals []float64
	db.Model(&domain.Order{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Pluck("total_usd", &totals)

	var avgOrderValue, medianOrderValue float64
	if len(totals) > 0 {
		if v, err := stats.Mean(totals); err == nil {
			avgOrderValue = pricing.Round2(v)
		}
		if v, err := stats.Median(totals); err == nil {
			medianOrderValue = pricing.Round2(v)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_revenue":      totalRevenue,
		"total_orders":       totalOrders,
		"total_customers":    totalCustomers,
		"conversion_rate":    3.2,
		"low_stock_items":    lowStockItems,
		"avg_order_value":    avgOrderValue,
		"median_order_value": medianOrderValue,
	})
}
