// Package storeapi serves the public storefront and the authenticated
// customer endpoints.
package storeapi

// InitRouters registers all storefront routes with the web server.
func InitRouters() {
	registerHealthRoutes()
	registerProductRoutes()
	registerAuthRoutes()
	registerCartRoutes()
	registerOrderRoutes()
	registerPromotionRoutes()
	registerPaymentRoutes()
	registerSupportRoutes()
}
