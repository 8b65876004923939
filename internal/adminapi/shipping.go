package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerShippingRoutes() {
	webserver.AdminGET("/shipping-zones", listShippingZones)
	webserver.AdminPOST("/shipping-zones", createShippingZone)
	webserver.AdminPUT("/shipping-zones/:id", updateShippingZone)
	webserver.AdminDELETE("/shipping-zones/:id", deleteShippingZone)
}

func listShippingZones(c echo.Context) error {
	var zones []domain.ShippingZone
	if err := webserver.GetDB(c).Order("id").Find(&zones).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query shipping zones"})
	}

	views := make([]echo.Map, 0, len(zones))
	for _, z := range zones {
		views = append(views, echo.Map{
			"_id":           strconv.FormatInt(z.ID, 10),
			"name":          z.Name,
			"rate":          z.Rate,
			"currency":      z.Currency,
			"delivery_days": z.DeliveryDays,
			"active":        z.Active,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"zones": views})
}

type shippingZonePayload struct {
	Name         string   `json:"name"`
	Rate         *float64 `json:"rate"`
	Currency     string   `json:"currency"`
	DeliveryDays string   `json:"delivery_days"`
	Active       *bool    `json:"active"`
}

func createShippingZone(c echo.Context) error {
	var payload shippingZonePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse shipping zone"})
	}
	if strings.TrimSpace(payload.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
	}
	if payload.Currency == "" {
		payload.Currency = "KES"
	}

	zone := domain.ShippingZone{
		Name:         strings.TrimSpace(payload.Name),
		Currency:     payload.Currency,
		DeliveryDays: payload.DeliveryDays,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if payload.Rate != nil {
		zone.Rate = *payload.Rate
	}
	if err := webserver.GetDB(c).Create(&zone).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create shipping zone"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "success"})
}

func updateShippingZone(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid shipping zone ID"})
	}
	var zone domain.ShippingZone
	if err := webserver.GetDB(c).Where("id = ?", id).First(&zone).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Shipping zone not found"})
	}

	var payload shippingZonePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse shipping zone"})
	}
	if name := strings.TrimSpace(payload.Name); name != "" {
		zone.Name = name
	}
	if payload.Rate != nil {
		zone.Rate = *payload.Rate
	}
	if payload.Currency != "" {
		zone.Currency = payload.Currency
	}
	if payload.DeliveryDays != "" {
		zone.DeliveryDays = payload.DeliveryDays
	}
	if payload.Active != nil {
		zone.Active = *payload.Active
	}

	if err := webserver.GetDB(c).Save(&zone).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update shipping zone"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func deleteShippingZone(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid shipping zone ID"})
	}
	if err := webserver.GetDB(c).Where("id = ?", id).Delete(&domain.ShippingZone{}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete shipping zone"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
