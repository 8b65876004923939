package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerPaymentRoutes() {
	webserver.PubGET("/payment-methods/:country", getPaymentMethods)
}

type paymentMethod struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

var paymentMethodsByCountry = map[string][]paymentMethod{
	"Kenya": {
		{Name: "M-Pesa", Code: "mpesa"},
		{Name: "Airtel Money", Code: "airtel"},
		{Name: "Visa/Mastercard", Code: "card"},
	},
	"Uganda": {
		{Name: "MTN Mobile Money", Code: "mtn"},
		{Name: "Airtel Money", Code: "airtel"},
		{Name: "Visa/Mastercard", Code: "card"},
	},
}

func getPaymentMethods(c echo.Context) error {
	country := c.Param("country")
	methods, ok := paymentMethodsByCountry[country]
	if !ok {
		methods = []paymentMethod{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"country": country,
		"methods": methods,
	})
}
