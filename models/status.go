package models

import "strings"

// OrderStatus is the value set of orders.status. Transitions between values are driven
// by the caller; only membership is checked here.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// OrderStatuses returns every order status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return append([]OrderStatus(nil), orderStatuses...)
}

func (s OrderStatus) IsValid() bool {
	for _, v := range orderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

var paymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentCompleted,
	PaymentFailed,
	PaymentRefunded,
}

func PaymentStatuses() []PaymentStatus {
	return append([]PaymentStatus(nil), paymentStatuses...)
}

func (s PaymentStatus) IsValid() bool {
	for _, v := range paymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DescribeOrderStatuses lists the accepted values, for error messages.
func DescribeOrderStatuses() string {
	parts := make([]string, len(orderStatuses))
	for i, s := range orderStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func DescribePaymentStatuses() string {
	parts := make([]string, len(paymentStatuses))
	for i, s := range paymentStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
