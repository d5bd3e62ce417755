package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AGASocial/bottcierge/internal/billing"
	"github.com/AGASocial/bottcierge/internal/events"
	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

// Notifier receives order changes for real-time propagation.
type Notifier interface {
	OrderStatusChanged(orderID, orderNumber string, status models.OrderStatus)
	BroadcastAllOrders(orders []models.Order)
}

type OrderService struct {
	Orders   repo.Orders
	Tables   repo.Tables
	Products repo.Products
	Producer *events.Producer
	Notifier Notifier
}

type CreateOrderInput struct {
	VenueID string `json:"venueId"`
	TableID string `json:"tableId"`
	UserID  string `json:"userId"`
	Type    string `json:"type"`
}

type AddItemInput struct {
	ProductID string            `json:"productId"`
	SizeID    string            `json:"sizeId"`
	Quantity  int               `json:"quantity"`
	Options   map[string]string `json:"options"`
}

func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	var table *models.Table
	if in.TableID != "" {
		t, err := s.Tables.Get(ctx, in.TableID)
		if err != nil {
			return nil, fromDB(err, "table")
		}
		table = t
	}

	n, err := s.Orders.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		ID:          uuid.NewString(),
		OrderNumber: fmt.Sprintf("ORD-%03d", n+1),
		UserID:      in.UserID,
		TableID:     in.TableID,
		VenueID:     in.VenueID,
		Type:        in.Type,
		Items:       []models.OrderItem{},
		Status:      models.OrderDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if table != nil {
		table.CurrentOrderID = order.ID
		if err := s.Tables.Save(ctx, table); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":        "order_created",
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"tableId":     order.TableID,
	})
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "order")
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.Orders.List(ctx)
}

// AddItem appends a product to a draft order. An item with the same product
// and size merges into the existing line instead of duplicating it.
func (s *OrderService) AddItem(ctx context.Context, orderID string, in AddItemInput) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, fromDB(err, "order")
	}
	if order.Status != models.OrderDraft {
		return nil, fmt.Errorf("%w: order is %s, items can only change on a draft", ErrConflict, order.Status)
	}

	product, err := s.Products.Get(ctx, in.ProductID)
	if err != nil {
		return nil, fromDB(err, "product")
	}

	size, ok := findSize(product.Sizes, in.SizeID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown size for product %s", ErrValidation, product.Name)
	}
	if !size.IsAvailable {
		return nil, fmt.Errorf("%w: size %s is not available", ErrValidation, size.Name)
	}

	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	merged := false
	for i := range order.Items {
		if order.Items[i].ProductID == product.ID && order.Items[i].Size.ID == size.ID {
			order.Items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     size.CurrentPrice,
			Quantity:  qty,
			Size:      size,
			Options:   in.Options,
			Status:    models.ItemPending,
		})
	}

	s.recompute(order)
	if err := s.Orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":      "order_item_added",
		"orderId":   order.ID,
		"productId": product.ID,
		"quantity":  qty,
		"total":     order.Total,
	})
	return order, nil
}

// RemoveItem decrements the item by one unit; removing the last unit drops
// the line entirely.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, itemID string) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, fromDB(err, "order")
	}
	if order.Status != models.OrderDraft {
		return nil, fmt.Errorf("%w: order is %s, items can only change on a draft", ErrConflict, order.Status)
	}

	idx := findItem(order.Items, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: item", ErrNotFound)
	}

	order.Items[idx].Quantity--
	if order.Items[idx].Quantity <= 0 {
		order.Items = append(order.Items[:idx], order.Items[idx+1:]...)
	}

	s.recompute(order)
	if err := s.Orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":    "order_item_removed",
		"orderId": order.ID,
		"itemId":  itemID,
		"total":   order.Total,
	})
	return order, nil
}

// UpdateItemQuantity sets the quantity outright; zero or less drops the line.
func (s *OrderService) UpdateItemQuantity(ctx context.Context, orderID, itemID string, qty int) (*models.Order, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, fromDB(err, "order")
	}
	if order.Status != models.OrderDraft {
		return nil, fmt.Errorf("%w: order is %s, items can only change on a draft", ErrConflict, order.Status)
	}

	idx := findItem(order.Items, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: item", ErrNotFound)
	}

	if qty <= 0 {
		order.Items = append(order.Items[:idx], order.Items[idx+1:]...)
	} else {
		order.Items[idx].Quantity = qty
	}

	s.recompute(order)
	if err := s.Orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus applies a validated lifecycle transition. Setting the current
// status again is a no-op; an illegal transition is a conflict.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, fromDB(err, "order")
	}
	if order.Status == status {
		return order, nil
	}
	if !order.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrConflict, order.Status, status)
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.Orders.Save(ctx, order); err != nil {
		return nil, err
	}

	if status.Terminal() && order.TableID != "" {
		if table, err := s.Tables.Get(ctx, order.TableID); err == nil && table.CurrentOrderID == order.ID {
			table.CurrentOrderID = ""
			if err := s.Tables.Save(ctx, table); err != nil {
				logging.FromContext(ctx).Error("clear table order", "table_id", table.ID, "error", err)
			}
		}
	}

	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(order.ID, order.OrderNumber, order.Status)
		if orders, err := s.Orders.List(ctx); err == nil {
			s.Notifier.BroadcastAllOrders(orders)
		}
	}
	s.publish(ctx, order.ID, map[string]any{
		"type":        "order_status_changed",
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"status":      order.Status,
	})
	return order, nil
}

func (s *OrderService) SetTip(ctx context.Context, orderID string, additionalTip float64) (*models.Order, error) {
	if additionalTip < 0 {
		return nil, fmt.Errorf("%w: tip must be >= 0", ErrValidation)
	}

	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, fromDB(err, "order")
	}

	order.AdditionalTip = billing.Round2(additionalTip)
	s.recompute(order)
	if err := s.Orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Bill(ctx context.Context, orderID string) (*billing.Bill, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, fromDB(err, "order")
	}
	bill := billing.Compute(order.Total, order.AdditionalTip)
	return &bill, nil
}

// recompute restores the total invariant after any item mutation.
func (s *OrderService) recompute(order *models.Order) {
	for i := range order.Items {
		order.Items[i].TotalPrice = billing.Round2(order.Items[i].Price * float64(order.Items[i].Quantity))
	}
	order.Total = billing.Subtotal(order.Items)
	order.Tip = billing.Compute(order.Total, order.AdditionalTip).DefaultTip
	order.UpdatedAt = time.Now()
}

func (s *OrderService) publish(ctx context.Context, key string, event map[string]any) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pctx, events.TopicOrders, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish", "topic", events.TopicOrders, "error", err)
	}
}

func findSize(sizes []models.Size, id string) (models.Size, bool) {
	for _, sz := range sizes {
		if sz.ID == id {
			return sz, true
		}
	}
	return models.Size{}, false
}

func findItem(items []models.OrderItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
