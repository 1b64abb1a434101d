package models

import "time"

type Order struct {
	ID              uint          `json:"order_id" gorm:"column:order_id;primaryKey"`
	UserID          uint          `json:"user_id" gorm:"not null;index"`
	RestaurantID    uint          `json:"restaurant_id" gorm:"not null;index"`
	OrderDate       time.Time     `json:"order_date" gorm:"autoCreateTime"`
	TotalAmount     float64       `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:chk_orders_status,status IN ('pending','confirmed','preparing','out_for_delivery','delivered','cancelled')"`
	PaymentMethod   string        `json:"payment_method" gorm:"type:varchar(50);default:'cash'"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"type:varchar(20);not null;default:'pending';check:chk_orders_payment_status,payment_status IN ('pending','completed','failed','refunded')"`
	DeliveryAddress string        `json:"delivery_address" gorm:"type:text;not null"`

	Items    []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Delivery *OrderDelivery `json:"delivery,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Review   *Review        `json:"review,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// Filled by joins in list queries; not a column.
	RestaurantName string `json:"restaurant_name,omitempty" gorm:"->;-:migration"`
}

func (Order) TableName() string { return "orders" }

// OrderItem stores the price at checkout; later menu price changes do not touch it.
type OrderItem struct {
	ID        uint    `json:"order_item_id" gorm:"column:order_item_id;primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ItemID    uint    `json:"item_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	ItemPrice float64 `json:"item_price" gorm:"type:decimal(10,2);not null"`

	ItemName string `json:"item_name,omitempty" gorm:"->;-:migration"`
}

func (OrderItem) TableName() string { return "order_items" }

// LineTotal is quantity times the snapshot price.
func (i OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.ItemPrice
}
