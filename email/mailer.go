// Package email sends transactional storefront mail over SMTP.
package email

import (
	"fmt"

	"github.com/eonerhime/easy-shoppers-hub/models"
	"gopkg.in/gomail.v2"
)

// Mailer delivers order-related notifications. Delivery is best-effort and
// never part of the order's consistency boundary.
type Mailer interface {
	SendOrderConfirmation(order *models.Order) error
}

// SMTPMailer sends through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendOrderConfirmation(order *models.Order) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", order.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation - %s", order.OrderNumber))
	msg.SetBody("text/html", confirmationBody(order))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send confirmation for %s: %w", order.OrderNumber, err)
	}
	return nil
}

func confirmationBody(order *models.Order) string {
	return fmt.Sprintf(`<h2>Thank you for your order!</h2>
<p>Order Number: <strong>%s</strong></p>
<p>Order Date: %s</p>
<p>Total: %.2f %s</p>
<p>Shipping Address: %s, %s</p>
<p>We'll send you tracking information once your order ships.</p>`,
		order.OrderNumber,
		order.OrderDate.Format("1/2/2006"),
		order.TotalAmount,
		order.Currency,
		order.ShipToAddress,
		order.ShipToCity,
	)
}

// NoopMailer is used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) SendOrderConfirmation(*models.Order) error { return nil }
