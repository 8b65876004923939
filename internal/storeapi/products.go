package storeapi

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func registerProductRoutes() {
	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/products/:id", getProduct)
}

type productView struct {
	ID                 string          `json:"_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	BasePriceUSD       float64         `json:"base_price_usd"`
	Prices             domain.PriceMap `json:"prices"`
	InStock            bool            `json:"in_stock"`
	ImageURL           string          `json:"image_url"`
	DiscountPercentage float64         `json:"discount_percentage"`
	OnSale             bool            `json:"on_sale"`
}

func toProductView(p *domain.Product) productView {
	return productView{
		ID:                 strconv.FormatInt(p.ID, 10),
		Name:               p.Name,
		Description:        p.Description,
		Category:           p.Category,
		BasePriceUSD:       p.BasePriceUSD,
		Prices:             p.Prices,
		InStock:            p.InStock,
		ImageURL:           p.ImageURL,
		DiscountPercentage: p.DiscountPercentage,
		OnSale:             p.OnSale,
	}
}

func listProducts(c echo.Context) error {
	var products []domain.Product
	if err := webserver.GetDB(c).Find(&products).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query products"})
	}

	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, toProductView(&products[i]))
	}

	// jsoniter keeps the catalog listing cheap; it is the hottest path.
	data, err := json.Marshal(echo.Map{
		"status":   "success",
		"count":    len(views),
		"products": views,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to encode products"})
	}
	return c.JSONBlob(http.StatusOK, data)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	var p domain.Product
	if err := webserver.GetDB(c).Where("id = ?", id).First(&p).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"product": toProductView(&p),
	})
}
