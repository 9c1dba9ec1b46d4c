package models

import "time"

// Reward active=false 为软下架，历史兑换仍可见但不可再兑换
type Reward struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	Name           string    `gorm:"column:name;size:100;not null" json:"name"`
	Description    string    `gorm:"column:description;size:255;not null" json:"description"`
	PointsRequired int       `gorm:"column:points_required;not null" json:"points_required"`
	Active         bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Reward) TableName() string {
	return "rewards"
}
