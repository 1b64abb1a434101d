package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username     string    `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Phone        string    `json:"phone" gorm:"type:varchar(15)"`
	Address      string    `json:"address" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`

	Orders  []Order  `json:"orders,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }
