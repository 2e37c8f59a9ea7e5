package email

import (
	"strings"
	"testing"
	"time"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

func TestConfirmationBody(t *testing.T) {
	order := &models.Order{
		OrderNumber:   "ORD-123456789",
		TotalAmount:   220.00,
		Currency:      "USD",
		ShipToAddress: "1 Analytical Way",
		ShipToCity:    "London",
		OrderDate:     time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	body := confirmationBody(order)

	for _, want := range []string{"ORD-123456789", "220.00 USD", "1 Analytical Way, London", "3/14/2025"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}
