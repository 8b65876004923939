package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
	"github.com/spf13/cast"
)

func registerContentRoutes() {
	webserver.AdminGET("/content", getContent)
	webserver.AdminPUT("/content", updateContent)
}

// getContent merges stored edits over the default site content so the
// console always sees every editable key.
func getContent(c echo.Context) error {
	var rows []domain.SiteContent
	if err := webserver.GetDB(c).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query content"})
	}

	stored := make(map[string]string, len(rows))
	for _, row := range rows {
		stored[row.Key] = row.Value
	}

	content := make(echo.Map, len(domain.DefaultSiteContent))
	for key, fallback := range domain.DefaultSiteContent {
		if v, ok := stored[key]; ok {
			content[key] = v
		} else {
			content[key] = fallback
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"content": content})
}

type contentPayload struct {
	Section string      `json:"section"`
	Value   interface{} `json:"value"`
}

func updateContent(c echo.Context) error {
	var payload contentPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse request"})
	}
	if payload.Section == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Section is required"})
	}
	value := cast.ToString(payload.Value)

	db := webserver.GetDB(c)
	var content domain.SiteContent
	err := db.Where("key = ?", payload.Section).First(&content).Error
	if err == nil {
		content.Value = value
		content.UpdatedAt = time.Now()
		if err := db.Save(&content).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update content"})
		}
	} else {
		content = domain.SiteContent{Key: payload.Section, Value: value, UpdatedAt: time.Now()}
		if err := db.Create(&content).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update content"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "success", "message": "Content updated successfully"})
}
