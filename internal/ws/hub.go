// Package ws implements the order-status push channel. Clients connect to
// /ws, send subscribe actions and receive orderStatusUpdate / allOrders
// events. Delivery is fire-and-forget: a slow or broken connection is
// dropped, never retried.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/models"
)

const (
	writeTimeout = 5 * time.Second
	listTimeout  = 5 * time.Second
)

// OrderLister supplies the order snapshot sent to new all-orders
// subscribers.
type OrderLister interface {
	List(ctx context.Context) ([]models.Order, error)
}

type Hub struct {
	log      *slog.Logger
	orders   OrderLister
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	orders map[string]struct{}
	all    bool
}

type action struct {
	Action  string `json:"action"`
	OrderID string `json:"orderId"`
}

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type OrderStatusUpdate struct {
	OrderID     string             `json:"orderId"`
	OrderNumber string             `json:"orderNumber,omitempty"`
	Status      models.OrderStatus `json:"status"`
}

func NewHub(log *slog.Logger, orders OrderLister) *Hub {
	return &Hub{
		log:    log,
		orders: orders,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) Handler(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{
		conn:   conn,
		send:   make(chan []byte, 32),
		orders: make(map[string]struct{}),
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	go cl.writeLoop()
	h.readLoop(cl)
	return nil
}

func (h *Hub) readLoop(cl *client) {
	defer func() {
		// closing send under the hub lock excludes in-flight broadcasts
		h.mu.Lock()
		delete(h.clients, cl)
		close(cl.send)
		h.mu.Unlock()
		cl.conn.Close()
	}()

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}
		var a action
		if err := json.Unmarshal(data, &a); err != nil {
			h.log.Warn("ws bad message", "error", err)
			continue
		}

		cl.mu.Lock()
		switch a.Action {
		case "subscribeToOrder":
			if a.OrderID != "" {
				cl.orders[a.OrderID] = struct{}{}
			}
		case "unsubscribeFromOrder":
			delete(cl.orders, a.OrderID)
		case "subscribeToAllOrders":
			cl.all = true
		default:
			h.log.Warn("ws unknown action", "action", a.Action)
		}
		cl.mu.Unlock()

		if a.Action == "subscribeToAllOrders" {
			h.sendSnapshot(cl)
		}
	}
}

// sendSnapshot answers a new all-orders subscription with the current
// order list.
func (h *Hub) sendSnapshot(cl *client) {
	if h.orders == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()

	orders, err := h.orders.List(ctx)
	if err != nil {
		h.log.Error("ws list orders", "error", err)
		return
	}
	msg, err := allOrdersMessage(orders)
	if err != nil {
		return
	}
	cl.trySend(msg)
}

func (cl *client) writeLoop() {
	for msg := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			cl.conn.Close()
			return
		}
	}
}

func (cl *client) wants(orderID string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.all {
		return true
	}
	_, ok := cl.orders[orderID]
	return ok
}

// OrderStatusChanged pushes an orderStatusUpdate event to every connection
// subscribed to the order or to the all-orders channel.
func (h *Hub) OrderStatusChanged(orderID, orderNumber string, status models.OrderStatus) {
	msg, err := json.Marshal(envelope{
		Event: "orderStatusUpdate",
		Data:  OrderStatusUpdate{OrderID: orderID, OrderNumber: orderNumber, Status: status},
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients {
		if cl.wants(orderID) {
			cl.trySend(msg)
		}
	}
}

func allOrdersMessage(orders []models.Order) ([]byte, error) {
	return json.Marshal(envelope{
		Event: "allOrders",
		Data:  map[string]any{"orders": orders},
	})
}

// BroadcastAllOrders pushes the full order list to all-orders subscribers.
func (h *Hub) BroadcastAllOrders(orders []models.Order) {
	msg, err := allOrdersMessage(orders)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients {
		cl.mu.Lock()
		all := cl.all
		cl.mu.Unlock()
		if all {
			cl.trySend(msg)
		}
	}
}

// trySend never blocks; a client with a full buffer misses the event.
func (cl *client) trySend(msg []byte) {
	select {
	case cl.send <- msg:
	default:
	}
}
