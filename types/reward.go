package types

import "time"

type RewardItem struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
	CanRedeem      bool   `json:"can_redeem"`
}

type ListRewardsResponse struct {
	CurrentPoints int          `json:"current_points"`
	Rewards       []RewardItem `json:"rewards"`
}

type RedeemRequest struct {
	RewardID uint `json:"reward_id" binding:"required"`
}

type RedemptionItem struct {
	ID         uint      `json:"id"`
	RewardName string    `json:"reward_name"`
	PointsUsed int       `json:"points_used"`
	Timestamp  time.Time `json:"timestamp"`
}

type RedeemResponse struct {
	Redemption      RedemptionItem `json:"redemption"`
	RemainingPoints int            `json:"remaining_points"`
}

type CreateRewardRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description" binding:"required"`
	PointsRequired int    `json:"points_required" binding:"required"`
	Active         *bool  `json:"active"` // 缺省 true
}

type RewardDetail struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PointsRequired int    `json:"points_required"`
	Active         bool   `json:"active"`
}

type CreateRewardResponse struct {
	Reward RewardDetail `json:"reward"`
}
