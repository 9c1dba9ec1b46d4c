package types

type UsersTotal struct {
	Total int64 `json:"total"`
}

type DisposalStats struct {
	Total        int64   `json:"total"`
	TotalWasteKg float64 `json:"total_waste_kg"`
	DryWasteKg   float64 `json:"dry_waste_kg"`
	WetWasteKg   float64 `json:"wet_waste_kg"`
}

type RewardStats struct {
	TotalPointsDistributed int64 `json:"total_points_distributed"`
	TotalPointsRedeemed    int64 `json:"total_points_redeemed"`
	TotalRedemptions       int64 `json:"total_redemptions"`
}

type GlobalStatistics struct {
	Users     UsersTotal    `json:"users"`
	Disposals DisposalStats `json:"disposals"`
	Rewards   RewardStats   `json:"rewards"`
}

type ReportPeriod struct {
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	Period string `json:"period"` // 例如 "March 2026"
}

type MonthlySummary struct {
	TotalDisposals    int64   `json:"total_disposals"`
	ActiveUsers       int64   `json:"active_users"`
	TotalWasteKg      float64 `json:"total_waste_kg"`
	DryWasteKg        float64 `json:"dry_waste_kg"`
	WetWasteKg        float64 `json:"wet_waste_kg"`
	TotalPointsEarned int64   `json:"total_points_earned"`
	TotalRedemptions  int64   `json:"total_redemptions"`
	PointsRedeemed    int64   `json:"points_redeemed"`
}

type TopUser struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	WasteKg float64 `json:"waste_kg"`
}

type MonthlyReport struct {
	Report   ReportPeriod   `json:"report"`
	Summary  MonthlySummary `json:"summary"`
	TopUsers []TopUser      `json:"top_users"`
}
