package service

import (
	"context"
	"math"
	"time"

	"EcoBin/dao"
	"EcoBin/models"
	"EcoBin/pkg/response"
	"EcoBin/types"

	"gorm.io/gorm"
)

var _ IReportService = (*ReportService)(nil)

// IReportService 纯读侧聚合，每次查询都反映当前数据，不做缓存
type IReportService interface {
	UserStats(ctx context.Context, userID uint) (*types.UserStatistics, error)
	ListUsers(ctx context.Context) (*types.ListUsersResponse, error)
	GlobalStats(ctx context.Context) (*types.GlobalStatistics, error)
	Monthly(ctx context.Context, month int, year int) (*types.MonthlyReport, error)
}

type ReportService struct {
	DB          *gorm.DB
	Users       *dao.Users
	Disposals   *dao.Disposals
	Redemptions *dao.Redemptions
}

type disposalAgg struct {
	Count       int64   `gorm:"column:count"`
	TotalWeight float64 `gorm:"column:total_weight"`
	DryWeight   float64 `gorm:"column:dry_weight"`
	WetWeight   float64 `gorm:"column:wet_weight"`
	Points      int64   `gorm:"column:points"`
	Users       int64   `gorm:"column:users"`
}

const disposalAggSelect = `COUNT(*) AS count,
IFNULL(SUM(weight), 0) AS total_weight,
IFNULL(SUM(CASE WHEN waste_type = 'dry' THEN weight ELSE 0 END), 0) AS dry_weight,
IFNULL(SUM(CASE WHEN waste_type = 'wet' THEN weight ELSE 0 END), 0) AS wet_weight,
IFNULL(SUM(points_earned), 0) AS points,
COUNT(DISTINCT user_id) AS users`

type redemptionAgg struct {
	Count  int64 `gorm:"column:count"`
	Points int64 `gorm:"column:points"`
}

const redemptionAggSelect = `COUNT(*) AS count, IFNULL(SUM(points_used), 0) AS points`

func (s *ReportService) UserStats(ctx context.Context, userID uint) (*types.UserStatistics, error) {
	var da disposalAgg
	err := s.DB.WithContext(ctx).Table("disposals").
		Select(disposalAggSelect).
		Where("user_id = ?", userID).
		Scan(&da).Error
	if err != nil {
		return nil, err
	}

	redemptions, err := s.Redemptions.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.UserStatistics{
		TotalDisposals:   da.Count,
		TotalWasteKg:     round2(da.TotalWeight),
		DryWasteKg:       round2(da.DryWeight),
		WetWasteKg:       round2(da.WetWeight),
		TotalRedemptions: redemptions,
	}, nil
}

func (s *ReportService) ListUsers(ctx context.Context) (*types.ListUsersResponse, error) {
	users, err := s.Users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 一次分组统计，避免每个用户单查
	type perUser struct {
		UserID uint    `gorm:"column:user_id"`
		Count  int64   `gorm:"column:count"`
		Waste  float64 `gorm:"column:waste"`
	}
	var rows []perUser
	err = s.DB.WithContext(ctx).Table("disposals").
		Select("user_id, COUNT(*) AS count, IFNULL(SUM(weight), 0) AS waste").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byUser := make(map[uint]perUser, len(rows))
	for _, r := range rows {
		byUser[r.UserID] = r
	}

	items := make([]types.AdminUserItem, 0, len(users))
	for _, u := range users {
		stat := byUser[u.ID]
		items = append(items, types.AdminUserItem{
			ID:             u.ID,
			Name:           u.Name,
			Phone:          u.Phone,
			Address:        u.Address,
			RewardPoints:   u.RewardPoints,
			TotalDisposals: stat.Count,
			TotalWasteKg:   round2(stat.Waste),
			CreatedAt:      u.CreatedAt,
		})
	}

	return &types.ListUsersResponse{
		Users:      items,
		TotalUsers: len(items),
	}, nil
}

func (s *ReportService) GlobalStats(ctx context.Context) (*types.GlobalStatistics, error) {
	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}

	var da disposalAgg
	err = s.DB.WithContext(ctx).Table("disposals").
		Select(disposalAggSelect).
		Scan(&da).Error
	if err != nil {
		return nil, err
	}

	var ra redemptionAgg
	err = s.DB.WithContext(ctx).Table("redemptions").
		Select(redemptionAggSelect).
		Scan(&ra).Error
	if err != nil {
		return nil, err
	}

	return &types.GlobalStatistics{
		Users: types.UsersTotal{Total: totalUsers},
		Disposals: types.DisposalStats{
			Total:        da.Count,
			TotalWasteKg: round2(da.TotalWeight),
			DryWasteKg:   round2(da.DryWeight),
			WetWasteKg:   round2(da.WetWeight),
		},
		Rewards: types.RewardStats{
			TotalPointsDistributed: da.Points,
			TotalPointsRedeemed:    ra.Points,
			TotalRedemptions:       ra.Count,
		},
	}, nil
}

// Monthly 月度报表，统计窗口为 [月初, 次月初)。
// 月初第一刻的投递计入当月，次月初第一刻的不计入。
func (s *ReportService) Monthly(ctx context.Context, month int, year int) (*types.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, response.BadRequest("invalid month (1-12)")
	}
	if year < 2000 || year > 2100 {
		return nil, response.BadRequest("invalid year")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var da disposalAgg
	err := s.DB.WithContext(ctx).Table("disposals").
		Select(disposalAggSelect).
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Scan(&da).Error
	if err != nil {
		return nil, err
	}

	var ra redemptionAgg
	err = s.DB.WithContext(ctx).Table("redemptions").
		Select(redemptionAggSelect).
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Scan(&ra).Error
	if err != nil {
		return nil, err
	}

	topUsers, err := s.topUsers(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &types.MonthlyReport{
		Report: types.ReportPeriod{
			Month:  month,
			Year:   year,
			Period: start.Format("January 2006"),
		},
		Summary: types.MonthlySummary{
			TotalDisposals:    da.Count,
			ActiveUsers:       da.Users,
			TotalWasteKg:      round2(da.TotalWeight),
			DryWasteKg:        round2(da.DryWeight),
			WetWasteKg:        round2(da.WetWeight),
			TotalPointsEarned: da.Points,
			TotalRedemptions:  ra.Count,
			PointsRedeemed:    ra.Points,
		},
		TopUsers: topUsers,
	}, nil
}

// topUsers 窗口内按累计重量取前 5，并列时按 user_id 升序
func (s *ReportService) topUsers(ctx context.Context, start, end time.Time) ([]types.TopUser, error) {
	type row struct {
		UserID uint    `gorm:"column:user_id"`
		Waste  float64 `gorm:"column:waste"`
	}
	var rows []row
	err := s.DB.WithContext(ctx).Table("disposals").
		Select("user_id, SUM(weight) AS waste").
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Group("user_id").
		Order("waste DESC, user_id ASC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	top := make([]types.TopUser, 0, len(rows))
	if len(rows) == 0 {
		return top, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	var users []models.User
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, r := range rows {
		u, ok := byID[r.UserID]
		if !ok {
			continue
		}
		top = append(top, types.TopUser{
			Name:    u.Name,
			Phone:   u.Phone,
			WasteKg: round2(r.Waste),
		})
	}
	return top, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
