package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerPromotionRoutes() {
	webserver.AdminGET("/promotions", listPromotions)
	webserver.AdminPOST("/promotions", createPromotion)
	webserver.AdminDELETE("/promotions/:id", deletePromotion)
}

func listPromotions(c echo.Context) error {
	var promotions []domain.Promotion
	if err := webserver.GetDB(c).Order("id").Find(&promotions).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query promotions"})
	}

	views := make([]echo.Map, 0, len(promotions))
	for _, p := range promotions {
		var expires interface{}
		if p.Expires != nil {
			expires = p.Expires.Format(time.RFC3339)
		}
		views = append(views, echo.Map{
			"_id":      strconv.FormatInt(p.ID, 10),
			"code":     p.Code,
			"discount": p.Discount,
			"type":     p.Type,
			"status":   p.Status,
			"uses":     p.Uses,
			"limit":    p.Limit,
			"expires":  expires,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"promotions": views})
}

type promotionPayload struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Type     string  `json:"type"`
	Limit    int     `json:"limit"`
	Expires  string  `json:"expires"`
}

func createPromotion(c echo.Context) error {
	var payload promotionPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse promotion"})
	}
	code := strings.ToUpper(strings.TrimSpace(payload.Code))
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Code is required"})
	}
	if payload.Type == "" {
		payload.Type = "percentage"
	}

	// The console sends expiry in whatever format the operator typed;
	// dateparse handles the usual variants.
	var expires *time.Time
	if strings.TrimSpace(payload.Expires) != "" {
		t, err := dateparse.ParseAny(payload.Expires)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid expiry date"})
		}
		expires = &t
	}

	promo := domain.Promotion{
		Code:      code,
		Discount:  payload.Discount,
		Type:      payload.Type,
		Status:    domain.PromotionStatusActive,
		Limit:     payload.Limit,
		Expires:   expires,
		CreatedAt: time.Now(),
	}
	if err := webserver.GetDB(c).Create(&promo).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create promotion"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "success"})
}

func deletePromotion(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid promotion ID"})
	}
	var promo domain.Promotion
	if err := webserver.GetDB(c).Where("id = ?", id).First(&promo).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Promotion not found"})
	}
	if err := webserver.GetDB(c).Delete(&promo).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete promotion"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
