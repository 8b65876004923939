package storeapi

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/config"
	"github.com/queenkoba/queenkoba/internal/app"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	workdir, err := os.MkdirTemp("", "queenkoba-storeapi-*")
	if err != nil {
		panic(err)
	}

	cfg := &config.AppConfig{
		System:   config.SysConfig{Appid: "test", Location: "UTC", Workdir: workdir},
		Web:      config.WebConfig{Host: "127.0.0.1", Port: 0, JwtSecret: "test-secret"},
		Database: config.DBConfig{Type: "sqlite", URL: "file::memory:?cache=shared"},
		Logger:   config.LogConfig{Mode: "development"},
	}

	appx := app.Initialize(cfg)
	webserver.Init(appx)
	InitRouters()

	code := m.Run()
	appx.Release()
	_ = os.RemoveAll(workdir)
	os.Exit(code)
}

func doRequest(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	webserver.Instance().Echo().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func signupCustomer(t *testing.T, email string) string {
	t.Helper()
	rec := doRequest(http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Test Customer",
		"email":    email,
		"phone":    "0700000001",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHome(t *testing.T) {
	rec := doRequest(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Queen Koba Skincare", body["api"])
	assert.Equal(t, "running", body["status"])
}

func TestHealthCheck(t *testing.T) {
	rec := doRequest(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])

	counts, ok := body["counts"].(map[string]interface{})
	require.True(t, ok, "counts must be an object")
	for _, key := range []string{"products", "users", "orders"} {
		v, ok := counts[key].(float64)
		require.True(t, ok, "counts.%s must be a number", key)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Equal(t, float64(int64(v)), v, "counts.%s must be an integer", key)
	}
	assert.Equal(t, 6.0, counts["products"], "seed catalog has six products")
}

func TestListProducts(t *testing.T) {
	rec := doRequest(http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	products, ok := body["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, products, 6)

	first := products[0].(map[string]interface{})
	assert.NotEmpty(t, first["_id"])
	assert.NotEmpty(t, first["name"])
	prices, ok := first["prices"].(map[string]interface{})
	require.True(t, ok)
	for _, currency := range []string{"KES", "UGX", "BIF", "CDF"} {
		assert.Contains(t, prices, currency)
	}
}

func TestGetProduct(t *testing.T) {
	rec := doRequest(http.MethodGet, "/products/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	product := body["product"].(map[string]interface{})
	assert.Equal(t, "1", product["_id"])

	rec = doRequest(http.MethodGet, "/products/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(http.MethodGet, "/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupValidation(t *testing.T) {
	rec := doRequest(http.MethodPost, "/auth/signup", "", map[string]string{
		"email": "incomplete@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Name, email, phone and password required", body["message"])
}

func TestSignupAndLogin(t *testing.T) {
	email := "customer1@example.com"
	signupCustomer(t, email)

	// Duplicate email rejected
	rec := doRequest(http.MethodPost, "/auth/signup", "", map[string]string{
		"name": "Dup", "email": email, "phone": "0700000002", "password": "x12345",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, rec)["message"])

	// Wrong password rejected
	rec = doRequest(http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct login succeeds
	rec = doRequest(http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, email, user["email"])
}

func TestGoogleLoginStub(t *testing.T) {
	rec := doRequest(http.MethodGet, "/auth/google", "", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestProfile(t *testing.T) {
	token := signupCustomer(t, "profile@example.com")
	rec := doRequest(http.MethodGet, "/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "profile@example.com", user["email"])
	assert.Equal(t, "Kenya", user["country"])
}

func TestCartRequiresAuth(t *testing.T) {
	rec := doRequest(http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing bearer token")

	rec = doRequest(http.MethodGet, "/cart", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	token := signupCustomer(t, "shopper@example.com")

	// Empty cart cannot check out
	rec := doRequest(http.MethodPost, "/checkout", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cart is empty", decodeBody(t, rec)["error"])

	// Add product 1 twice: quantities accumulate
	rec = doRequest(http.MethodPost, "/cart/add", token, map[string]interface{}{
		"product_id": 1, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doRequest(http.MethodPost, "/cart/add", token, map[string]interface{}{
		"product_id": 1, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	require.NoError(t, app.GApp().DB().Where("id = ?", 1).First(&product).Error)

	rec = doRequest(http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	cart := body["cart"].([]interface{})
	require.Len(t, cart, 1)
	line := cart[0].(map[string]interface{})
	assert.Equal(t, 3.0, line["quantity"])
	total := body["total"].(map[string]interface{})
	assert.InDelta(t, product.BasePriceUSD*3, total["usd"].(float64), 0.01)

	// Unknown product rejected
	rec = doRequest(http.MethodPost, "/cart/add", token, map[string]interface{}{
		"product_id": 99999, "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Remove, then re-add one unit for checkout
	rec = doRequest(http.MethodDelete, "/cart/remove/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(http.MethodGet, "/cart", token, nil)
	assert.Len(t, decodeBody(t, rec)["cart"].([]interface{}), 0)

	rec = doRequest(http.MethodPost, "/cart/add", token, map[string]interface{}{
		"product_id": 2, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(http.MethodPost, "/checkout", token, map[string]interface{}{
		"shipping_address": map[string]string{"city": "Nairobi"},
		"payment_method":   "mpesa",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	orderRef, _ := body["order_id"].(string)
	assert.Len(t, orderRef, 8)

	var product2 domain.Product
	require.NoError(t, app.GApp().DB().Where("id = ?", 2).First(&product2).Error)
	assert.InDelta(t, product2.BasePriceUSD*2, body["total"].(float64), 0.01)

	// Cart cleared after checkout
	rec = doRequest(http.MethodGet, "/cart", token, nil)
	assert.Len(t, decodeBody(t, rec)["cart"].([]interface{}), 0)

	// Orders list shows the new order, newest first
	rec = doRequest(http.MethodGet, "/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeBody(t, rec)["orders"].([]interface{})
	require.Len(t, orders, 1)
	first := orders[0].(map[string]interface{})
	assert.Equal(t, orderRef, first["order_id"])
	assert.Equal(t, "processing", first["order_status"])

	// Order detail by public reference
	rec = doRequest(http.MethodGet, "/orders/"+orderRef, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	order := decodeBody(t, rec)["order"].(map[string]interface{})
	assert.Equal(t, "pending", order["payment_status"])
	assert.Equal(t, "mpesa", order["payment_method"])

	// Another customer cannot read it
	other := signupCustomer(t, "other@example.com")
	rec = doRequest(http.MethodGet, "/orders/"+orderRef, other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPaymentMethods(t *testing.T) {
	rec := doRequest(http.MethodGet, "/payment-methods/Kenya", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	methods := body["methods"].([]interface{})
	require.NotEmpty(t, methods)
	codes := make([]string, 0, len(methods))
	for _, m := range methods {
		codes = append(codes, m.(map[string]interface{})["code"].(string))
	}
	assert.Contains(t, codes, "mpesa")

	rec = doRequest(http.MethodGet, "/payment-methods/Iceland", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["methods"])
}

func TestPromotionValidation(t *testing.T) {
	db := app.GApp().DB()
	now := time.Now()

	expired := now.Add(-time.Hour)
	future := now.Add(30 * 24 * time.Hour)
	require.NoError(t, db.Create(&domain.Promotion{
		Code: "WELCOME10", Discount: 10, Type: "percentage",
		Status: domain.PromotionStatusActive, Expires: &future, CreatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&domain.Promotion{
		Code: "OLDCODE", Discount: 5, Type: "percentage",
		Status: domain.PromotionStatusActive, Expires: &expired, CreatedAt: now,
	}).Error)
	require.NoError(t, db.Create(&domain.Promotion{
		Code: "MAXEDOUT", Discount: 5, Type: "fixed",
		Status: domain.PromotionStatusActive, Uses: 100, Limit: 100, CreatedAt: now,
	}).Error)

	rec := doRequest(http.MethodPost, "/promotions/validate", "", map[string]string{"code": "welcome10"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "WELCOME10", body["code"])
	assert.Equal(t, 10.0, body["discount"])

	rec = doRequest(http.MethodPost, "/promotions/validate", "", map[string]string{"code": "NOPE"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(http.MethodPost, "/promotions/validate", "", map[string]string{"code": "OLDCODE"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Promo code expired", decodeBody(t, rec)["error"])

	rec = doRequest(http.MethodPost, "/promotions/validate", "", map[string]string{"code": "MAXEDOUT"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Promo code limit reached", decodeBody(t, rec)["error"])

	rec = doRequest(http.MethodGet, "/promotions/active", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	promos := decodeBody(t, rec)["promotions"].([]interface{})
	assert.GreaterOrEqual(t, len(promos), 3)
}

func TestSupportTicket(t *testing.T) {
	rec := doRequest(http.MethodPost, "/support-tickets", "", map[string]string{
		"customer_name":  "Jane",
		"customer_email": "jane@example.com",
		"subject":        "Where is my order",
		"message":        "It has been a week.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["ticket_id"])

	var ticket domain.SupportTicket
	require.NoError(t, app.GApp().DB().
		Where("customer_email = ?", "jane@example.com").First(&ticket).Error)
	assert.Equal(t, "medium", ticket.Priority)
	assert.Equal(t, "open", ticket.Status)
}

func TestUnknownRoute(t *testing.T) {
	rec := doRequest(http.MethodGet, fmt.Sprintf("/definitely-not-a-route-%d", time.Now().Unix()), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
