package dao

import (
	"context"

	"EcoBin/models"

	"gorm.io/gorm"
)

type Redemptions struct {
	Repo[models.Redemption]
}

func NewRedemptions(db *gorm.DB) *Redemptions {
	return &Redemptions{
		Repo: NewRepo[models.Redemption](db),
	}
}

func (r *Redemptions) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.Redemption{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
