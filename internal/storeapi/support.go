package storeapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/internal/mailer"
	"github.com/queenkoba/queenkoba/internal/webserver"
)

func registerSupportRoutes() {
	webserver.PubPOST("/support-tickets", createSupportTicket)
}

type ticketPayload struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	Priority      string `json:"priority"`
}

func createSupportTicket(c echo.Context) error {
	var payload ticketPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to parse request"})
	}
	if payload.Priority == "" {
		payload.Priority = "medium"
	}

	ticket := domain.SupportTicket{
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		Subject:       payload.Subject,
		Message:       payload.Message,
		Priority:      payload.Priority,
		Status:        "open",
		CreatedAt:     time.Now(),
	}
	if err := webserver.GetDB(c).Create(&ticket).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create ticket"})
	}

	webserver.App().Bus().Publish(mailer.TopicTicketCreated, &ticket)

	return c.JSON(http.StatusCreated, echo.Map{
		"status":    "success",
		"ticket_id": strconv.FormatInt(ticket.ID, 10),
	})
}
