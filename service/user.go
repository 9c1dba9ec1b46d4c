package service

import (
	"context"
	"errors"
	"net/http"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/models"
	"EcoBin/pkg/jwt"
	"EcoBin/pkg/log"
	"EcoBin/pkg/qrcode"
	"EcoBin/pkg/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, string, error)
	AuthenticateByQr(ctx context.Context, qrCode string) (*models.User, string, error)
}

type UserService struct {
	Config *config.Config
	DB     *gorm.DB
	Users  *dao.Users
}

type UserRegisterOpt struct {
	Name    string
	Phone   string
	Address string
}

// Register 注册新用户并生成唯一二维码。二维码图片渲染失败只记日志，
// 不回滚注册。
func (s *UserService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, string, error) {
	exist, err := s.Users.IsPhoneExist(ctx, opt.Phone)
	if err != nil {
		return nil, "", err
	}
	if exist {
		return nil, "", response.Conflict("phone number already registered")
	}

	user := &models.User{
		Name:    opt.Name,
		Phone:   opt.Phone,
		Address: opt.Address,
		QrCode:  uuid.NewString(),
	}

	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", response.Conflict("phone number already registered")
		}
		return nil, "", err
	}

	qrPath, err := qrcode.Generate(s.Config.Qr.ImageDir(), user.QrCode, user.ID)
	if err != nil {
		log.L.Error("generate qr image failed",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		qrPath = ""
	}

	log.L.Info("new user registered",
		zap.Uint("user_id", user.ID),
		zap.String("name", user.Name),
	)
	return user, qrPath, nil
}

// AuthenticateByQr 扫码登录，签发 user 类型 token
func (s *UserService) AuthenticateByQr(ctx context.Context, qrCode string) (*models.User, string, error) {
	user, err := s.Users.FindByQrCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NotFound("invalid qr code")
		}
		return nil, "", err
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, jwt.KindUser, s.Config.Jwt.Expire())
	if err != nil {
		return nil, "", response.NewError(http.StatusInternalServerError, "issue token failed")
	}

	log.L.Info("user authenticated", zap.Uint("user_id", user.ID))
	return user, token, nil
}
