package types

import "time"

type RegisterUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type RegisteredUser struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	QrCode       string `json:"qr_code"`
	QrCodePath   string `json:"qr_code_path,omitempty"` // 渲染失败时为空
	RewardPoints int    `json:"reward_points"`
}

type RegisterUserResponse struct {
	User RegisteredUser `json:"user"`
}

type AuthenticateRequest struct {
	QrCode string `json:"qr_code" binding:"required"`
}

type UserSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	RewardPoints int    `json:"reward_points"`
}

type AuthenticateResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type ProfileUser struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	QrCode       string    `json:"qr_code"`
	RewardPoints int       `json:"reward_points"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStatistics 重量保留两位小数，仅用于展示
type UserStatistics struct {
	TotalDisposals   int64   `json:"total_disposals"`
	TotalWasteKg     float64 `json:"total_waste_kg"`
	DryWasteKg       float64 `json:"dry_waste_kg"`
	WetWasteKg       float64 `json:"wet_waste_kg"`
	TotalRedemptions int64   `json:"total_redemptions"`
}

type UserProfileResponse struct {
	User       ProfileUser    `json:"user"`
	Statistics UserStatistics `json:"statistics"`
}
