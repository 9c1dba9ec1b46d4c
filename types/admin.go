package types

import "time"

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type AdminLoginResponse struct {
	Token string       `json:"token"`
	Admin AdminSummary `json:"admin"`
}

type AdminUserItem struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	RewardPoints   int       `json:"reward_points"`
	TotalDisposals int64     `json:"total_disposals"`
	TotalWasteKg   float64   `json:"total_waste_kg"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListUsersResponse struct {
	Users      []AdminUserItem `json:"users"`
	TotalUsers int             `json:"total_users"`
}
