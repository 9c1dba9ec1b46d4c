package service

import (
	"context"
	"errors"
	"net/http"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/models"
	"EcoBin/pkg/encrypt"
	"EcoBin/pkg/jwt"
	"EcoBin/pkg/log"
	"EcoBin/pkg/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	Login(ctx context.Context, username string, password string) (*models.Admin, string, error)
}

type AdminService struct {
	Config *config.Config
	Admins *dao.Admins
}

// Login 账号密码登录，签发 admin 类型 token。
// 账号不存在和密码错误返回同一消息，不泄露账号是否存在。
func (s *AdminService) Login(ctx context.Context, username string, password string) (*models.Admin, string, error) {
	admin, err := s.Admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.Unauthorized("invalid credentials")
		}
		return nil, "", err
	}

	if !encrypt.VerifyPassword(admin.PasswordHash, password) {
		return nil, "", response.Unauthorized("invalid credentials")
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), admin.ID, jwt.KindAdmin, s.Config.Jwt.Expire())
	if err != nil {
		return nil, "", response.NewError(http.StatusInternalServerError, "issue token failed")
	}

	log.L.Info("admin logged in", zap.String("username", admin.Username))
	return admin, token, nil
}
