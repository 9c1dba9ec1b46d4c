package models

import "time"

// Redemption points_used 是兑换时刻 points_required 的快照
type Redemption struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null;index:idx_redemption_user" json:"user_id"`
	RewardID   uint      `gorm:"column:reward_id;not null" json:"reward_id"`
	PointsUsed int       `gorm:"column:points_used;not null" json:"points_used"`
	Timestamp  time.Time `gorm:"column:timestamp;not null;index:idx_redemption_ts" json:"timestamp"`
}

func (Redemption) TableName() string {
	return "redemptions"
}
