package models

import "time"

// Disposal 一次投递流水，points_earned 写入后不再重算
type Disposal struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index:idx_disposal_user" json:"user_id"`
	WasteType    string    `gorm:"column:waste_type;size:10;not null" json:"waste_type"`
	Weight       float64   `gorm:"column:weight;not null" json:"weight"`
	PointsEarned int       `gorm:"column:points_earned;not null" json:"points_earned"`
	Timestamp    time.Time `gorm:"column:timestamp;not null;index:idx_disposal_ts" json:"timestamp"`
}

func (Disposal) TableName() string {
	return "disposals"
}
