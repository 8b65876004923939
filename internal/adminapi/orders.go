package adminapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerOrderRoutes() {
	webserver.AdminGET("/orders", listOrders)
	webserver.AdminGET("/orders/export", exportOrders)
	webserver.AdminGET("/payments", listPayments)
}

func listOrders(c echo.Context) error {
	page, pageSize := parsePagination(c)

	var orders []domain.Order
	if err := webserver.GetDB(c).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query orders"})
	}

	views := make([]echo.Map, 0, len(orders))
	for _, o := range orders {
		views = append(views, echo.Map{
			"_id":          strconv.FormatInt(o.ID, 10),
			"order_id":     o.OrderRef,
			"user_id":      strconv.FormatInt(o.UserId, 10),
			"total_usd":    o.TotalUSD,
			"order_status": o.OrderStatus,
			"created_at":   o.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": views})
}

// exportOrders streams the full order book as an xlsx workbook.
func exportOrders(c echo.Context) error {
	var orders []domain.Order
	if err := webserver.GetDB(c).Order("created_at DESC").Find(&orders).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query orders"})
	}

	xlsx := excelize.NewFile()
	const sheet = "Sheet1"
	headers := []string{"Order Ref", "User ID", "Total USD", "Payment Method", "Payment Status", "Order Status", "Created At"}
	for i, h := range headers {
		xlsx.SetCellValue(sheet, excelize.ToAlphaString(i)+"1", h)
	}
	for row, o := range orders {
		values := []interface{}{
			o.OrderRef,
			strconv.FormatInt(o.UserId, 10),
			o.TotalUSD,
			o.PaymentMethod,
			o.PaymentStatus,
			o.OrderStatus,
			o.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell := excelize.ToAlphaString(col) + strconv.Itoa(row+2)
			xlsx.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to build export"})
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// listPayments derives the payment ledger from orders.
func listPayments(c echo.Context) error {
	var orders []domain.Order
	if err := webserver.GetDB(c).Order("created_at DESC").Find(&orders).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query payments"})
	}

	payments := make([]echo.Map, 0, len(orders))
	for _, o := range orders {
		payments = append(payments, echo.Map{
			"_id":            strconv.FormatInt(o.ID, 10),
			"order_id":       o.OrderRef,
			"amount":         o.TotalUSD,
			"payment_method": o.PaymentMethod,
			"payment_status": o.PaymentStatus,
			"created_at":     o.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"payments": payments})
}
