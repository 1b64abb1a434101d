package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID           uint      `json:"review_id" gorm:"column:review_id;primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	OrderID      uint      `json:"order_id" gorm:"not null;uniqueIndex"`
	Rating       int       `json:"rating" gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment      string    `json:"comment" gorm:"type:text"`
	ReviewDate   time.Time `json:"review_date" gorm:"autoCreateTime"`
}

func (Review) TableName() string { return "reviews" }
