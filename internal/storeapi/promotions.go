package storeapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerPromotionRoutes() {
	webserver.PubGET("/promotions/active", listActivePromotions)
	webserver.PubPOST("/promotions/validate", validatePromotion)
}

func listActivePromotions(c echo.Context) error {
	var promotions []domain.Promotion
	if err := webserver.GetDB(c).
		Where("status = ?", domain.PromotionStatusActive).
		Find(&promotions).Error; err != nil {
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
			"expires":  expires,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"promotions": views})
}

type promoValidatePayload struct {
	Code string `json:"code"`
}

func validatePromotion(c echo.Context) error {
	var payload promoValidatePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse request"})
	}
	code := strings.ToUpper(strings.TrimSpace(payload.Code))

	var promo domain.Promotion
	err := webserver.GetDB(c).
		Where("code = ? AND status = ?", code, domain.PromotionStatusActive).
		First(&promo).Error
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Invalid promo code"})
	}

	if promo.Expired(time.Now()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Promo code expired"})
	}
	if promo.LimitReached() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Promo code limit reached"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"code":     promo.Code,
		"discount": promo.Discount,
		"type":     promo.Type,
	})
}
