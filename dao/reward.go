package dao

import (
	"context"

	"EcoBin/models"

	"gorm.io/gorm"
)

type Rewards struct {
	Repo[models.Reward]
}

func NewRewards(db *gorm.DB) *Rewards {
	return &Rewards{
		Repo: NewRepo[models.Reward](db),
	}
}

func (r *Rewards) ListActive(ctx context.Context) ([]*models.Reward, error) {
	var rewards []*models.Reward
	err := r.Db.WithContext(ctx).
		Where("active = ?", true).
		Order("points_required ASC, id ASC").
		Find(&rewards).Error
	return rewards, err
}
