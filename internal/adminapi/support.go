package adminapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerSupportRoutes() {
	webserver.AdminGET("/support-tickets", listSupportTickets)
}

func listSupportTickets(c echo.Context) error {
	var tickets []domain.SupportTicket
	if err := webserver.GetDB(c).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to query tickets"})
	}

	views := make([]echo.Map, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, echo.Map{
			"_id":            strconv.FormatInt(t.ID, 10),
			"customer_name":  t.CustomerName,
			"customer_email": t.CustomerEmail,
			"subject":        t.Subject,
			"message":        t.Message,
			"priority":       t.Priority,
			"status":         t.Status,
			"created_at":     t.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": views})
}
