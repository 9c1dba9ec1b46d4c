package service

import (
	"context"
	"errors"
	"time"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/models"
	"EcoBin/pkg/log"
	"EcoBin/pkg/response"
	"EcoBin/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IRewardService = (*RewardService)(nil)

type IRewardService interface {
	ListActive(ctx context.Context, userID uint) (*types.ListRewardsResponse, error)
	Redeem(ctx context.Context, userID uint, rewardID uint) (*types.RedeemResponse, error)
	Create(ctx context.Context, req *types.CreateRewardRequest) (*models.Reward, error)
}

type RewardService struct {
	Config      *config.Config
	DB          *gorm.DB
	Users       *dao.Users
	Rewards     *dao.Rewards
	Redemptions *dao.Redemptions
}

func (s *RewardService) ListActive(ctx context.Context, userID uint) (*types.ListRewardsResponse, error) {
	user, err := s.Users.FindById(ctx, userID)
	if err != nil {
		return nil, response.NotFound("user not found")
	}

	rewards, err := s.Rewards.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]types.RewardItem, 0, len(rewards))
	for _, r := range rewards {
		items = append(items, types.RewardItem{
			ID:             r.ID,
			Name:           r.Name,
			Description:    r.Description,
			PointsRequired: r.PointsRequired,
			CanRedeem:      user.RewardPoints >= r.PointsRequired,
		})
	}

	return &types.ListRewardsResponse{
		CurrentPoints: user.RewardPoints,
		Rewards:       items,
	}, nil
}

// Redeem 兑换奖励。points_used 固化兑换时刻的 points_required，
// 扣减用条件 UPDATE 原子完成，余额在行锁内复核，
// 并发兑换同一余额时只有一个能成功。
func (s *RewardService) Redeem(ctx context.Context, userID uint, rewardID uint) (*types.RedeemResponse, error) {
	var (
		redemption models.Redemption
		reward     models.Reward
		remaining  int
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", rewardID).First(&reward).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NotFound("reward not found")
			}
			return err
		}
		if !reward.Active {
			return response.BadRequest("reward is not available")
		}

		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NotFound("user not found")
			}
			return err
		}
		if user.RewardPoints < reward.PointsRequired {
			return response.BadRequest("insufficient points")
		}

		// 条件更新本身取行锁并复核余额，防止双花
		rows, err := dao.AddPoints(tx, userID, -reward.PointsRequired)
		if err != nil {
			return err
		}
		if rows == 0 {
			return response.BadRequest("insufficient points")
		}

		redemption = models.Redemption{
			UserID:     userID,
			RewardID:   reward.ID,
			PointsUsed: reward.PointsRequired,
			Timestamp:  time.Now(),
		}
		if err := tx.Create(&redemption).Error; err != nil {
			return err
		}

		remaining = user.RewardPoints - reward.PointsRequired
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("reward redeemed",
		zap.Uint("user_id", userID),
		zap.Uint("reward_id", reward.ID),
		zap.Int("points_used", redemption.PointsUsed),
	)

	return &types.RedeemResponse{
		Redemption: types.RedemptionItem{
			ID:         redemption.ID,
			RewardName: reward.Name,
			PointsUsed: redemption.PointsUsed,
			Timestamp:  redemption.Timestamp,
		},
		RemainingPoints: remaining,
	}, nil
}

func (s *RewardService) Create(ctx context.Context, req *types.CreateRewardRequest) (*models.Reward, error) {
	if req.PointsRequired <= 0 {
		return nil, response.BadRequest("points_required must be a positive integer")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	reward := &models.Reward{
		Name:           req.Name,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		Active:         active,
	}
	if err := s.Rewards.Create(ctx, reward); err != nil {
		return nil, err
	}

	log.L.Info("reward created",
		zap.Uint("reward_id", reward.ID),
		zap.String("name", reward.Name),
	)
	return reward, nil
}
