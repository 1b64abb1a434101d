package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"food-delivery-db/models"
)

type Type string

const (
	OrderPlaced    Type = "ORDER_PLACED"
	OrderConfirmed Type = "ORDER_CONFIRMED"
	Preparing      Type = "PREPARING"
	OutForDelivery Type = "OUT_FOR_DELIVERY"
	Delivered      Type = "DELIVERED"
	Cancelled      Type = "CANCELLED"
)

var statusTypes = map[models.OrderStatus]Type{
	models.StatusPending:        OrderPlaced,
	models.StatusConfirmed:      OrderConfirmed,
	models.StatusPreparing:      Preparing,
	models.StatusOutForDelivery: OutForDelivery,
	models.StatusDelivered:      Delivered,
	models.StatusCancelled:      Cancelled,
}

// TypeForStatus maps an order status to the notification announcing it.
func TypeForStatus(s models.OrderStatus) (Type, bool) {
	t, ok := statusTypes[s]
	return t, ok
}

// Notification tells a user that one of their orders changed status.
type Notification struct {
	UserID    uint      `json:"user_id"`
	OrderID   uint      `json:"order_id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// ForStatus builds the notification sent when an order enters status s.
func ForStatus(userID, orderID uint, s models.OrderStatus) (Notification, error) {
	t, ok := TypeForStatus(s)
	if !ok {
		return Notification{}, fmt.Errorf("no notification for status %q", s)
	}
	return Notification{
		UserID:    userID,
		OrderID:   orderID,
		Type:      t,
		Message:   fmt.Sprintf("Order #%d is now %s", orderID, s),
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher delivers a notification to wherever users read them.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// MemoryPublisher keeps an inbox per user.
type MemoryPublisher struct {
	mu    sync.Mutex
	inbox map[uint][]Notification
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{inbox: make(map[uint][]Notification)}
}

func (m *MemoryPublisher) Publish(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inbox[n.UserID] = append(m.inbox[n.UserID], n)
	return nil
}

// Notifications returns a copy of the user's inbox, oldest first.
func (m *MemoryPublisher) Notifications(userID uint, unreadOnly bool) []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Notification
	for _, n := range m.inbox[userID] {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out
}

// MarkAsRead flags the notification at index; it reports false for an unknown index.
func (m *MemoryPublisher) MarkAsRead(userID uint, index int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.inbox[userID]
	if index < 0 || index >= len(list) {
		return false
	}
	list[index].Read = true
	return true
}
