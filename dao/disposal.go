package dao

import (
	"context"
	"time"

	"EcoBin/models"

	"gorm.io/gorm"
)

type Disposals struct {
	Repo[models.Disposal]
}

func NewDisposals(db *gorm.DB) *Disposals {
	return &Disposals{
		Repo: NewRepo[models.Disposal](db),
	}
}

// DisposalFilter 投递流水筛选条件。时间范围统一为左闭右开 [From, To)
type DisposalFilter struct {
	UserID    uint
	WasteType string
	From      *time.Time
	To        *time.Time
}

func (d *Disposals) ListByFilter(ctx context.Context, filter DisposalFilter) ([]*models.Disposal, error) {
	query := d.Db.WithContext(ctx).Model(&models.Disposal{})

	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.WasteType != "" {
		query = query.Where("waste_type = ?", filter.WasteType)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp < ?", *filter.To)
	}

	var disposals []*models.Disposal
	err := query.Order("timestamp DESC, id DESC").Find(&disposals).Error
	return disposals, err
}

func (d *Disposals) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Disposal{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
