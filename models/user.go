package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:name;size:100;not null" json:"name"`
	Phone        string    `gorm:"column:phone;size:15;not null;uniqueIndex" json:"phone"`
	Address      string    `gorm:"column:address;size:255;not null" json:"address"`
	QrCode       string    `gorm:"column:qr_code;size:100;not null;uniqueIndex" json:"qr_code"`
	RewardPoints int       `gorm:"column:reward_points;not null;default:0" json:"reward_points"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
