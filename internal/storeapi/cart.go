package storeapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/pricing"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerCartRoutes() {
	webserver.AuthGET("/cart", getCart)
	webserver.AuthPOST("/cart/add", addToCart)
	webserver.AuthDELETE("/cart/remove/:product_id", removeFromCart)
}

type cartAddPayload struct {
	ProductId int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func getCart(c echo.Context) error {
	uid, err := webserver.CurrentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	var items []domain.CartItem
	if err := webserver.GetDB(c).Preload("Product").
		Where("user_id = ?", uid).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query cart"})
	}

	var totalUSD float64
	lines := make([]echo.Map, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		totalUSD += item.Product.BasePriceUSD * float64(item.Quantity)
		lines = append(lines, echo.Map{
			"product_id":    strconv.FormatInt(item.ProductId, 10),
			"product_name":  item.Product.Name,
			"product_price": item.Product.BasePriceUSD,
			"quantity":      item.Quantity,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"cart":   lines,
		"total":  echo.Map{"usd": pricing.Round2(totalUSD)},
	})
}

func addToCart(c echo.Context) error {
	uid, err := webserver.CurrentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	var payload cartAddPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse request"})
	}
	if payload.Quantity <= 0 {
		payload.Quantity = 1
	}

	db := webserver.GetDB(c)

	var product domain.Product
	if err := db.Where("id = ?", payload.ProductId).First(&product).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	var item domain.CartItem
	err = db.Where("user_id = ? AND product_id = ?", uid, payload.ProductId).First(&item).Error
	if err == nil {
		item.Quantity += payload.Quantity
		if err := db.Save(&item).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update cart"})
		}
	} else {
		item = domain.CartItem{
			UserId:    uid,
			ProductId: payload.ProductId,
			Quantity:  payload.Quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update cart"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Product added to cart"})
}

func removeFromCart(c echo.Context) error {
	uid, err := webserver.CurrentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	if err := webserver.GetDB(c).
		Where("user_id = ? AND product_id = ?", uid, productID).
		Delete(&domain.CartItem{}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update cart"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Product removed from cart"})
}
