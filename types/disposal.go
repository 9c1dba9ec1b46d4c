package types

import "time"

type LogDisposalRequest struct {
	WasteType string  `json:"waste_type" binding:"required"`
	Weight    float64 `json:"weight" binding:"required"`
}

type DisposalItem struct {
	ID           uint      `json:"id"`
	WasteType    string    `json:"waste_type"`
	Weight       float64   `json:"weight"`
	PointsEarned int       `json:"points_earned"`
	Timestamp    time.Time `json:"timestamp"`
}

type LogDisposalResponse struct {
	Disposal    DisposalItem `json:"disposal"`
	TotalPoints int          `json:"total_points"`
}

type UnlockBinRequest struct {
	WasteType string `json:"waste_type" binding:"required"`
}

type UnlockBinResponse struct {
	Message     string `json:"message"`
	WasteType   string `json:"waste_type"`
	User        string `json:"user"`
	Instruction string `json:"instruction"`
}

// ListDisposalsQuery 日期支持 RFC3339 或 2006-01-02，范围为左闭右开
type ListDisposalsQuery struct {
	UserID    uint   `form:"user_id"`
	WasteType string `form:"waste_type"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type AdminDisposalItem struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name"`
	WasteType    string    `json:"waste_type"`
	Weight       float64   `json:"weight"`
	PointsEarned int       `json:"points_earned"`
	Timestamp    time.Time `json:"timestamp"`
}

type ListDisposalsResponse struct {
	Disposals []AdminDisposalItem `json:"disposals"`
	Total     int                 `json:"total"`
}
