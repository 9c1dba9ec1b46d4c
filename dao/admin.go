package dao

import (
	"context"

	"EcoBin/models"

	"gorm.io/gorm"
)

type Admins struct {
	Repo[models.Admin]
}

func NewAdmins(db *gorm.DB) *Admins {
	return &Admins{Repo: NewRepo[models.Admin](db)}
}

func (a *Admins) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return a.Repo.FindByWhere(ctx, "username = ?", username)
}
