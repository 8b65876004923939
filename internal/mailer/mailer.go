// Package mailer sends transactional email (order confirmations, support
// ticket acknowledgements). Sends are best-effort: when SMTP is not
// configured the service subscribes but drops every message.
package mailer

import (
	"fmt"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/queenkoba/queenkoba/internal/app"
	"github.com/queenkoba/queenkoba/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const (
	TopicOrderCreated  = "order.created"
	TopicTicketCreated = "ticket.created"
)

type Service struct {
	appx app.AppContext
	pool *ants.Pool
}

// New creates the mailer and subscribes it to the application event bus.
func New(appx app.AppContext) (*Service, error) {
	pool, err := ants.NewPool(4)
	if err != nil {
		return nil, err
	}
	s := &Service{appx: appx, pool: pool}

	if err := appx.Bus().Subscribe(TopicOrderCreated, s.onOrderCreated); err != nil {
		return nil, err
	}
	if err := appx.Bus().Subscribe(TopicTicketCreated, s.onTicketCreated); err != nil {
		return nil, err
	}
	return s, nil
}

// Stop releases the worker pool.
func (s *Service) Stop() {
	if s.pool != nil {
		s.pool.Release()
	}
}

func (s *Service) enabled() bool {
	return s.appx.Config().Smtp.Host != ""
}

func (s *Service) onOrderCreated(order *domain.Order, email string) {
	if !s.enabled() || email == "" {
		return
	}
	subject := fmt.Sprintf("Queen Koba order %s confirmed", order.OrderRef)
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order %s.\n\n", order.OrderRef)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %d x %s - $%.2f\n", item.Quantity, item.ProductName, item.ItemTotal)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", order.TotalUSD)
	s.send(email, subject, b.String())
}

func (s *Service) onTicketCreated(ticket *domain.SupportTicket) {
	if !s.enabled() || ticket.CustomerEmail == "" {
		return
	}
	subject := fmt.Sprintf("We received your request: %s", ticket.Subject)
	body := fmt.Sprintf("Hi %s,\n\nYour support ticket #%d has been received. Our team will reply shortly.\n",
		ticket.CustomerName, ticket.ID)
	s.send(ticket.CustomerEmail, subject, body)
}

func (s *Service) send(to, subject, body string) {
	cfg := s.appx.Config().Smtp
	err := s.pool.Submit(func() {
		m := gomail.NewMessage()
		m.SetHeader("From", cfg.From)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		if err := d.DialAndSend(m); err != nil {
			zap.L().Warn("mail send failed", zap.String("to", to), zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Warn("mail pool submit failed", zap.Error(err))
	}
}
