package dao

import (
	"context"

	"EcoBin/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByPhone 手机号查询
func (u *Users) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "phone = ?", phone)
}

// IsPhoneExist 判断手机号是否已注册，查询失败时错误需上抛
func (u *Users) IsPhoneExist(ctx context.Context, phone string) (bool, error) {
	return u.Repo.IsExist(ctx, "phone = ?", phone)
}

// FindByQrCode 二维码 token 查询
func (u *Users) FindByQrCode(ctx context.Context, qrCode string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "qr_code = ?", qrCode)
}

// AddPoints 原子加减积分。gorm.Expr 保证并发下不会互相覆盖，
// amount 为负数时由 where 条件复核余额，返回受影响行数供调用方判定。
func AddPoints(tx *gorm.DB, userID uint, amount int) (int64, error) {
	q := tx.Model(&models.User{}).Where("id = ?", userID)
	if amount < 0 {
		q = q.Where("reward_points >= ?", -amount)
	}
	result := q.Update("reward_points", gorm.Expr("reward_points + ?", amount))
	return result.RowsAffected, result.Error
}
