package storeapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
	"github.com/queenkoba/queenkoba/pkg/common"
	"go.uber.org/zap"
)

func registerAuthRoutes() {
	webserver.PubPOST("/auth/signup", signup)
	webserver.PubPOST("/auth/login", login)
	webserver.PubGET("/auth/google", googleLogin)
	webserver.AuthGET("/auth/profile", profile)
}

type signupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func signup(c echo.Context) error {
	var payload signupPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Unable to parse request"})
	}
	if payload.Name == "" || payload.Email == "" || payload.Phone == "" || payload.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name, email, phone and password required"})
	}

	db := webserver.GetDB(c)

	var existing domain.User
	if err := db.Where("email = ?", payload.Email).First(&existing).Error; err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already registered"})
	}

	hashed, err := common.HashPassword(payload.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create account"})
	}

	user := domain.User{
		ID:                common.UUIDint64(),
		Name:              strings.TrimSpace(payload.Name),
		Email:             payload.Email,
		Phone:             payload.Phone,
		PasswordHash:      hashed,
		Role:              domain.RoleCustomer,
		Country:           "Kenya",
		PreferredCurrency: "KES",
		Status:            "active",
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create account"})
	}

	token, err := webserver.CreateToken(webserver.App().Config().Web.JwtSecret, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to issue token"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user": userView{
			ID:    strconv.FormatInt(user.ID, 10),
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
	})
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Unable to parse request"})
	}
	if payload.Email == "" || payload.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password required"})
	}

	var user domain.User
	err := webserver.GetDB(c).
		Where("email = ? AND role = ?", payload.Email, domain.RoleCustomer).
		First(&user).Error
	if err != nil || !common.CheckPassword(user.PasswordHash, payload.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	token, err := webserver.CreateToken(webserver.App().Config().Web.JwtSecret, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to issue token"})
	}

	name := user.Name
	if name == "" {
		name = user.Username
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": userView{
			ID:    strconv.FormatInt(user.ID, 10),
			Name:  name,
			Email: user.Email,
			Phone: user.Phone,
		},
	})
}

func googleLogin(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, echo.Map{"message": "Google OAuth not configured yet"})
}

func profile(c echo.Context) error {
	uid, err := webserver.CurrentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	var user domain.User
	if err := webserver.GetDB(c).Where("id = ?", uid).First(&user).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"user": echo.Map{
			"id":                 strconv.FormatInt(user.ID, 10),
			"name":               user.Name,
			"email":              user.Email,
			"phone":              user.Phone,
			"country":            user.Country,
			"preferred_currency": user.PreferredCurrency,
			"created_at":         user.CreatedAt.Format(time.RFC3339),
		},
	})
}
