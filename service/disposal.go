package service

import (
	"context"
	"errors"
	"time"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/models"
	"EcoBin/pkg/log"
	"EcoBin/pkg/points"
	"EcoBin/pkg/response"
	"EcoBin/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IDisposalService = (*DisposalService)(nil)

type IDisposalService interface {
	Record(ctx context.Context, userID uint, wasteType string, weight float64) (*models.Disposal, int, error)
	List(ctx context.Context, query *types.ListDisposalsQuery) ([]types.AdminDisposalItem, error)
}

type DisposalService struct {
	Config    *config.Config
	DB        *gorm.DB
	Users     *dao.Users
	Disposals *dao.Disposals
}

// Record 记录一次投递并发放积分。流水插入和余额增加在同一事务内，
// 任一失败整体回滚，不会出现只记流水不加分。
func (s *DisposalService) Record(ctx context.Context, userID uint, wasteType string, weight float64) (*models.Disposal, int, error) {
	if !points.ValidWasteType(wasteType) {
		return nil, 0, response.BadRequest(`waste_type must be either "dry" or "wet"`)
	}
	if weight <= 0 {
		return nil, 0, response.BadRequest("weight must be greater than 0")
	}

	earned := s.Config.Policy().Compute(wasteType, weight)

	disposal := &models.Disposal{
		UserID:       userID,
		WasteType:    wasteType,
		Weight:       weight,
		PointsEarned: earned,
		Timestamp:    time.Now(),
	}

	var total int
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := dao.AddPoints(tx, userID, earned)
		if err != nil {
			return err
		}
		if rows == 0 {
			return response.NotFound("user not found")
		}
		if err := tx.Create(disposal).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		total = user.RewardPoints
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	log.L.Info("disposal logged",
		zap.Uint("user_id", userID),
		zap.String("waste_type", wasteType),
		zap.Float64("weight", weight),
		zap.Int("points_earned", earned),
	)
	return disposal, total, nil
}

// List 管理端投递流水查询，时间范围为左闭右开
func (s *DisposalService) List(ctx context.Context, query *types.ListDisposalsQuery) ([]types.AdminDisposalItem, error) {
	filter := dao.DisposalFilter{
		UserID:    query.UserID,
		WasteType: query.WasteType,
	}

	if query.WasteType != "" && !points.ValidWasteType(query.WasteType) {
		return nil, response.BadRequest(`waste_type must be either "dry" or "wet"`)
	}

	from, err := parseDate(query.StartDate)
	if err != nil {
		return nil, response.BadRequest("invalid start_date")
	}
	to, err := parseDate(query.EndDate)
	if err != nil {
		return nil, response.BadRequest("invalid end_date")
	}
	filter.From = from
	filter.To = to

	disposals, err := s.Disposals.ListByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 批量取用户名，避免逐行查表
	idSet := make(map[uint]struct{})
	for _, d := range disposals {
		idSet[d.UserID] = struct{}{}
	}
	names := make(map[uint]string, len(idSet))
	if len(idSet) > 0 {
		ids := make([]uint, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		var users []models.User
		if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			names[u.ID] = u.Name
		}
	}

	items := make([]types.AdminDisposalItem, 0, len(disposals))
	for _, d := range disposals {
		name, ok := names[d.UserID]
		if !ok {
			name = "Unknown"
		}
		items = append(items, types.AdminDisposalItem{
			ID:           d.ID,
			UserID:       d.UserID,
			UserName:     name,
			WasteType:    d.WasteType,
			Weight:       d.Weight,
			PointsEarned: d.PointsEarned,
			Timestamp:    d.Timestamp,
		})
	}
	return items, nil
}

// parseDate 接受 RFC3339 或 2006-01-02
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, errors.New("unsupported date format")
	}
	return &t, nil
}
