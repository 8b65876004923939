package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
	"github.com/queenkoba/queenkoba/pkg/common"
)

func registerAuthRoutes() {
	// Login stays outside the admin JWT group.
	webserver.PubPOST("/admin/auth/login", adminLogin)
	webserver.AdminPUT("/profile/password", changePassword)
}

type adminLoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func adminLogin(c echo.Context) error {
	var payload adminLoginPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse request"})
	}

	var user domain.User
	err := webserver.GetDB(c).Where("email = ?", payload.Email).First(&user).Error
	if err != nil || !user.IsAdmin() {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}
	if !common.CheckPassword(user.PasswordHash, payload.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	token, err := webserver.CreateToken(webserver.App().Config().Web.JwtSecret, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to issue token"})
	}

	fullName := user.Username
	if fullName == "" {
		fullName = "Admin"
	}
	permissions := user.Permissions
	if len(permissions) == 0 {
		permissions = []string{"*"}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": echo.Map{
			"_id":         strconv.FormatInt(user.ID, 10),
			"email":       user.Email,
			"full_name":   fullName,
			"role":        user.Role,
			"permissions": permissions,
		},
	})
}

type passwordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func changePassword(c echo.Context) error {
	operator := webserver.Operator(c)
	if operator == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	var payload passwordPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse request"})
	}

	if !common.CheckPassword(operator.PasswordHash, payload.CurrentPassword) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Current password is incorrect"})
	}

	hashed, err := common.HashPassword(payload.NewPassword)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update password"})
	}
	if err := webserver.GetDB(c).Model(&domain.User{}).
		Where("id = ?", operator.ID).
		Update("password_hash", hashed).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update password"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Password updated successfully"})
}
