package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/pricing"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

type productPayload struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	BasePriceUSD       *float64 `json:"base_price_usd"`
	InStock            *bool    `json:"in_stock"`
	ImageURL           string   `json:"image_url"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	OnSale             *bool    `json:"on_sale"`
}

func registerProductRoutes() {
	webserver.AdminGET("/products", listProducts)
	webserver.AdminPOST("/products", createProduct)
	webserver.AdminPUT("/products/:id", updateProduct)
	webserver.AdminDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	db := webserver.GetDB(c).Model(&domain.Product{})

	// Optional name filter for the console search box.
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		if strings.EqualFold(webserver.GetDB(c).Name(), "postgres") {
			db = db.Where("name ILIKE ?", "%"+q+"%")
		} else {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
	}

	var products []domain.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query products"})
	}

	views := make([]echo.Map, 0, len(products))
	for _, p := range products {
		views = append(views, echo.Map{
			"_id":            strconv.FormatInt(p.ID, 10),
			"name":           p.Name,
			"description":    p.Description,
			"category":       p.Category,
			"base_price_usd": p.BasePriceUSD,
			"prices":         p.Prices,
			"in_stock":       p.InStock,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"products": views})
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse product"})
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
	}
	if payload.BasePriceUSD == nil || *payload.BasePriceUSD <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "base_price_usd must be positive"})
	}

	now := time.Now()
	p := domain.Product{
		Name:         payload.Name,
		Description:  payload.Description,
		Category:     payload.Category,
		BasePriceUSD: *payload.BasePriceUSD,
		Prices:       pricing.Calculate(*payload.BasePriceUSD),
		InStock:      true,
		ImageURL:     strings.TrimSpace(payload.ImageURL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if payload.InStock != nil {
		p.InStock = *payload.InStock
	}
	if payload.DiscountPercentage != nil {
		p.DiscountPercentage = *payload.DiscountPercentage
	}
	if payload.OnSale != nil {
		p.OnSale = *payload.OnSale
	}

	if err := webserver.GetDB(c).Create(&p).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create product"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"status":  "success",
		"product": echo.Map{"_id": strconv.FormatInt(p.ID, 10)},
	})
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}
	var p domain.Product
	if err := webserver.GetDB(c).Where("id = ?", id).First(&p).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse product"})
	}

	if name := strings.TrimSpace(payload.Name); name != "" {
		p.Name = name
	}
	if payload.Description != "" {
		p.Description = payload.Description
	}
	if payload.Category != "" {
		p.Category = payload.Category
	}
	if payload.ImageURL != "" {
		p.ImageURL = strings.TrimSpace(payload.ImageURL)
	}
	if payload.BasePriceUSD != nil && *payload.BasePriceUSD > 0 {
		p.BasePriceUSD = *payload.BasePriceUSD
		p.Prices = pricing.Calculate(*payload.BasePriceUSD)
	}
	if payload.InStock != nil {
		p.InStock = *payload.InStock
	}
	if payload.DiscountPercentage != nil {
		p.DiscountPercentage = *payload.DiscountPercentage
	}
	if payload.OnSale != nil {
		p.OnSale = *payload.OnSale
	}
	p.UpdatedAt = time.Now()

	if err := webserver.GetDB(c).Save(&p).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update product"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}
	if err := webserver.GetDB(c).Where("id = ?", id).Delete(&domain.Product{}).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete product"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
