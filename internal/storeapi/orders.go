package storeapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/mailer"
	"github.com/queenkoba/queenkoba/internal/pricing"
	"github.com/queenkoba/queenkoba/internal/webserver"
	"github.com/queenkoba/queenkoba/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerOrderRoutes() {
	webserver.AuthPOST("/checkout", checkout)
	webserver.AuthGET("/orders", listOrders)
	webserver.AuthGET("/orders/:order_id", getOrder)
}

type checkoutPayload struct {
	ShippingAddress map[string]string `json:"shipping_address"`
	PaymentMethod   string            `json:"payment_method"`
}

func checkout(c echo.Context) error {
	uid, err := webserver.CurrentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	var payload checkoutPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse request"})
	}
	if payload.PaymentMethod == "" {
		payload.PaymentMethod = "card"
	}
	if payload.ShippingAddress == nil {
		payload.ShippingAddress = map[string]string{}
	}

	db := webserver.GetDB(c)

	var cartItems []domain.CartItem
	if err := db.Preload("Product").Where("user_id = ?", uid).Find(&cartItems).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query cart"})
	}
	if len(cartItems) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cart is empty"})
	}

	var totalUSD float64
	orderItems := make([]domain.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		if item.Product == nil {
			continue
		}
		itemTotal := item.Product.BasePriceUSD * float64(item.Quantity)
		totalUSD += itemTotal
		orderItems = append(orderItems, domain.OrderItem{
			ProductId:    strconv.FormatInt(item.ProductId, 10),
			ProductName:  item.Product.Name,
			Quantity:     item.Quantity,
			PricePerItem: item.Product.BasePriceUSD,
			ItemTotal:    itemTotal,
		})
	}
	totalUSD = pricing.Round2(totalUSD)

	order := domain.Order{
		ID:              common.UUIDint64(),
		OrderRef:        common.ShortOrderRef(),
		UserId:          uid,
		Items:           orderItems,
		TotalUSD:        totalUSD,
		ShippingAddress: payload.ShippingAddress,
		PaymentMethod:   payload.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		OrderStatus:     domain.OrderStatusProcessing,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	// Order creation and cart clearing commit together.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", uid).Delete(&domain.CartItem{}).Error
	})
	if err != nil {
		zap.L().Error("failed to create order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create order"})
	}

	var user domain.User
	if err := db.Where("id = ?", uid).First(&user).Error; err == nil {
		webserver.App().Bus().Publish(mailer.TopicOrderCreated, &order, user.Email)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "success",
		"order_id": order.OrderRef,
		"total":    totalUSD,
	})
}

type orderView struct {
	ID          string             `json:"_id"`
	OrderRef    string             `json:"order_id"`
	Items       []domain.OrderItem `json:"items"`
	TotalUSD    float64            `json:"total_usd"`
	OrderStatus string             `json:"order_status"`
	CreatedAt   string             `json:"created_at"`
}

func toOrderView(o *domain.Order) orderView {
	return orderView{
		ID:          strconv.FormatInt(o.ID, 10),
		OrderRef:    o.OrderRef,
		Items:       o.Items,
		TotalUSD:    o.TotalUSD,
		OrderStatus: o.OrderStatus,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

func listOrders(c echo.Context) error {
	uid, err := webserver.CurrentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	var orders []domain.Order
	if err := webserver.GetDB(c).
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query orders"})
	}

	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, toOrderView(&orders[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success", "orders": views})
}

func getOrder(c echo.Context) error {
	uid, err := webserver.CurrentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	var order domain.Order
	if err := webserver.GetDB(c).
		Where("order_id = ? AND user_id = ?", c.Param("order_id"), uid).
		First(&order).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
	}

	view := toOrderView(&order)
	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"order": echo.Map{
			"_id":              view.ID,
			"order_id":         view.OrderRef,
			"items":            view.Items,
			"total_usd":        view.TotalUSD,
			"order_status":     view.OrderStatus,
			"payment_status":   order.PaymentStatus,
			"payment_method":   order.PaymentMethod,
			"shipping_address": order.ShippingAddress,
			"created_at":       view.CreatedAt,
		},
	})
}
