package models

import "time"

type DeliveryPersonnel struct {
	ID              uint    `json:"delivery_id" gorm:"column:delivery_id;primaryKey"`
	Name            string  `json:"name" gorm:"type:varchar(100);not null"`
	Phone           string  `json:"phone" gorm:"type:varchar(15);not null"`
	VehicleType     string  `json:"vehicle_type" gorm:"type:varchar(50)"`
	IsAvailable     bool    `json:"is_available" gorm:"default:true"`
	CurrentLocation string  `json:"current_location" gorm:"type:varchar(255)"`
	Rating          float64 `json:"rating" gorm:"type:decimal(2,1);default:0.0"`

	Deliveries []OrderDelivery `json:"deliveries,omitempty" gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryPersonnel) TableName() string { return "delivery_personnel" }

// OrderDelivery tracks one dispatch of an order. The timestamps are filled as the courier
// progresses: assigned at dispatch, picked up, then delivered.
type OrderDelivery struct {
	ID          uint       `json:"tracking_id" gorm:"column:tracking_id;primaryKey"`
	OrderID     uint       `json:"order_id" gorm:"not null;uniqueIndex"`
	DeliveryID  uint       `json:"delivery_id" gorm:"not null;index"`
	AssignedAt  time.Time  `json:"assigned_at" gorm:"autoCreateTime"`
	PickedUpAt  *time.Time `json:"picked_up_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

func (OrderDelivery) TableName() string { return "order_delivery" }

// Stage reports how far the delivery has progressed.
func (d OrderDelivery) Stage() string {
	switch {
	case d.DeliveredAt != nil:
		return "delivered"
	case d.PickedUpAt != nil:
		return "picked_up"
	default:
		return "assigned"
	}
}
