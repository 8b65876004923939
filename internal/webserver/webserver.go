package webserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/queenkoba/queenkoba/internal/app"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WebServer struct {
	root  *echo.Echo
	appx  *app.Application
	jwtmw echo.MiddlewareFunc
	pub   *echo.Group
	auth  *echo.Group
	admin *echo.Group
}

var server *WebServer

// Init builds the Echo server, middleware stack and route groups.
func Init(appx *app.Application) *WebServer {
	s := &WebServer{root: echo.New(), appx: appx}
	s.root.HideBanner = true
	s.root.HidePort = true

	s.root.Use(middleware.Recover())
	s.root.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: appx.Config().CorsOrigins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	s.root.Use(requestLogger())

	s.jwtmw = echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(appx.Config().Web.JwtSecret),
	})

	// The customer group keeps an empty prefix, so its JWT middleware is
	// attached per route: attaching it to the group itself would register
	// root-level catch-alls and turn every unknown path into a 401.
	s.pub = s.root.Group("")
	s.auth = s.root.Group("")
	s.admin = s.root.Group("/admin", s.jwtmw, adminRequired())

	server = s
	return s
}

// Instance returns the initialized server.
func Instance() *WebServer {
	return server
}

// Echo exposes the underlying echo instance, mainly for tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// Listen starts the HTTP server and blocks until shutdown.
func (s *WebServer) Listen() error {
	cfg := s.appx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("starting web server on %s", addr)
	err := s.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

// requestLogger logs each request through zap and counts it in metrics.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.AddPoint("http_requests", 1)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)))
			return err
		}
	}
}

// adminRequired loads the JWT identity and rejects non-admin users.
func adminRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := CurrentUserID(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
			}
			var user domain.User
			if err := GetDB(c).Where("id = ?", uid).First(&user).Error; err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
			}
			if !user.IsAdmin() {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Admin access required"})
			}
			c.Set("operator", &user)
			return next(c)
		}
	}
}

// Operator returns the admin user loaded by adminRequired.
func Operator(c echo.Context) *domain.User {
	if u, ok := c.Get("operator").(*domain.User); ok {
		return u
	}
	return nil
}

// GetDB returns the application database handle for request handlers.
func GetDB(c echo.Context) *gorm.DB {
	return server.appx.DB()
}

// App returns the application context for request handlers.
func App() *app.Application {
	return server.appx
}

// CreateToken signs a 24h access token for the given user ID, mirroring the
// storefront clients' expectations (HS256, identity in the subject claim).
func CreateToken(secret string, userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CurrentUserID extracts the authenticated user ID from the request token.
func CurrentUserID(c echo.Context) (int64, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, fmt.Errorf("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("unexpected claims type")
	}
	sub, _ := claims["sub"].(string)
	uid, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}
	return uid, nil
}

// Route registration helpers. Handler packages register their routes
// through these, keeping all grouping and middleware here.

func PubGET(path string, h echo.HandlerFunc)      { server.pub.GET(path, h) }
func PubPOST(path string, h echo.HandlerFunc)     { server.pub.POST(path, h) }
func AuthGET(path string, h echo.HandlerFunc)     { server.auth.GET(path, h, server.jwtmw) }
func AuthPOST(path string, h echo.HandlerFunc)    { server.auth.POST(path, h, server.jwtmw) }
func AuthDELETE(path string, h echo.HandlerFunc)  { server.auth.DELETE(path, h, server.jwtmw) }
func AdminGET(path string, h echo.HandlerFunc)    { server.admin.GET(path, h) }
func AdminPOST(path string, h echo.HandlerFunc)   { server.admin.POST(path, h) }
func AdminPUT(path string, h echo.HandlerFunc)    { server.admin.PUT(path, h) }
func AdminDELETE(path string, h echo.HandlerFunc) { server.admin.DELETE(path, h) }
