package models

import "time"

type Restaurant struct {
	ID          uint      `json:"restaurant_id" gorm:"column:restaurant_id;primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Address     string    `json:"address" gorm:"type:text;not null"`
	Phone       string    `json:"phone" gorm:"type:varchar(15)"`
	Rating      float64   `json:"rating" gorm:"type:decimal(2,1);default:0.0"`
	CuisineType string    `json:"cuisine_type" gorm:"type:varchar(50)"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`

	MenuItems []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Orders    []Order    `json:"orders,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string { return "restaurants" }

type MenuItem struct {
	ID           uint      `json:"item_id" gorm:"column:item_id;primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category     string    `json:"category" gorm:"type:varchar(50)"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`

	// Order lines keep their own price, so deleting the item only removes the lines themselves.
	OrderItems []OrderItem `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (MenuItem) TableName() string { return "menu_items" }
