package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AGASocial/bottcierge/internal/billing"
	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

// Card carries the (mock) payment instrument details.
type Card struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	CVV      string `json:"cvv"`
}

func (c Card) Last4() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// Gateway charges a card and returns a transaction id.
type Gateway interface {
	Charge(ctx context.Context, amount float64, card Card) (string, error)
}

// MockGateway stands in for the real processor: the test card ending in
// 0000 is always declined, everything else succeeds.
type MockGateway struct{}

func (MockGateway) Charge(_ context.Context, _ float64, card Card) (string, error) {
	if strings.HasSuffix(card.Number, "0000") {
		return "", fmt.Errorf("card declined: insufficient funds")
	}
	return "txn_" + uuid.NewString(), nil
}

type PaymentService struct {
	Payments repo.Payments
	Orders   repo.Orders
	Tables   repo.Tables
	Venues   repo.Venues
	OrderSvc *OrderService
	Gateway  Gateway
}

type PayInput struct {
	OrderID string  `json:"orderId"`
	Method  string  `json:"method"`
	Tip     float64 `json:"tip"`
	Card    Card    `json:"card"`
}

// Pay settles a draft order: it enforces the table minimum spend, charges
// the gateway, records the payment and moves the order to paid. A gateway
// decline is recorded as a failed payment, not an error.
func (s *PaymentService) Pay(ctx context.Context, in PayInput) (*models.Payment, error) {
	if in.Method != "card" && in.Method != "cash" {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, in.Method)
	}

	order, err := s.Orders.Get(ctx, in.OrderID)
	if err != nil {
		return nil, fromDB(err, "order")
	}
	if order.Status != models.OrderDraft {
		return nil, fmt.Errorf("%w: order is already %s", ErrConflict, order.Status)
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrValidation)
	}

	if err := s.checkMinimumSpend(ctx, order); err != nil {
		return nil, err
	}

	if in.Tip > 0 {
		order, err = s.OrderSvc.SetTip(ctx, order.ID, in.Tip)
		if err != nil {
			return nil, err
		}
	}

	bill := billing.Compute(order.Total, order.AdditionalTip)

	payment := &models.Payment{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Method:    in.Method,
		Amount:    bill.Total,
		Tip:       bill.DefaultTip + bill.AdditionalTip,
		CreatedAt: time.Now(),
	}

	txn, chargeErr := s.charge(ctx, bill.Total, in)
	if chargeErr != nil {
		payment.Status = "failed"
		if err := s.Payments.Create(ctx, payment); err != nil {
			return nil, err
		}
		return payment, nil
	}

	payment.Status = "completed"
	payment.TransactionID = txn
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if _, err := s.OrderSvc.UpdateStatus(ctx, order.ID, models.OrderPaid); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.Payments.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "payment")
	}
	return payment, nil
}

func (s *PaymentService) charge(ctx context.Context, amount float64, in PayInput) (string, error) {
	if in.Method == "cash" {
		return "cash_" + uuid.NewString(), nil
	}
	return s.Gateway.Charge(ctx, amount, in.Card)
}

// checkMinimumSpend rejects payment when the table's section minimum is not
// met and the table has no earlier settled order.
func (s *PaymentService) checkMinimumSpend(ctx context.Context, order *models.Order) error {
	if order.TableID == "" {
		return nil
	}
	table, err := s.Tables.Get(ctx, order.TableID)
	if err != nil {
		return nil
	}
	venue, err := s.Venues.Get(ctx, table.VenueID)
	if err != nil {
		return nil
	}

	min := billing.MinimumSpend(venue, table)
	if min <= 0 || order.Total >= min {
		return nil
	}

	prior, err := s.Orders.ListByTable(ctx, order.TableID)
	if err != nil {
		return err
	}
	for _, o := range prior {
		if o.ID != order.ID && o.Status != models.OrderDraft && o.Status != models.OrderCancelled {
			return nil
		}
	}
	return fmt.Errorf("%w: order total %.2f is below the table minimum spend %.2f", ErrValidation, order.Total, min)
}
