package handler

import (
	"net/http"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/middleware"
	"EcoBin/pkg/context"
	"EcoBin/pkg/response"
	"EcoBin/service"
	"EcoBin/types"

	"github.com/gin-gonic/gin"

	pkgjwt "EcoBin/pkg/jwt"
)

type User struct {
	Config        *config.Config
	Users         *dao.Users
	UserService   service.IUserService
	ReportService service.IReportService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	r.POST("/users/register", context.Wrap(u.Register))
	r.POST("/users/authenticate", context.Wrap(u.Authenticate))

	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), pkgjwt.KindUser, middleware.UserResolver(u.Users))
	g := r.Group("/users")
	g.Use(authorize)
	g.GET("/profile", context.Wrap(u.Profile))
}

func (u *User) Register(c *gin.Context) error {
	var req types.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("name, phone and address are required")
	}

	user, qrPath, err := u.UserService.Register(c.Request.Context(), &service.UserRegisterOpt{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	response.Created(c, types.RegisterUserResponse{
		User: types.RegisteredUser{
			ID:           user.ID,
			Name:         user.Name,
			Phone:        user.Phone,
			QrCode:       user.QrCode,
			QrCodePath:   qrPath,
			RewardPoints: user.RewardPoints,
		},
	})
	return nil
}

func (u *User) Authenticate(c *gin.Context) error {
	var req types.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("qr_code is required")
	}

	user, token, err := u.UserService.AuthenticateByQr(c.Request.Context(), req.QrCode)
	if err != nil {
		return err
	}

	response.Success(c, types.AuthenticateResponse{
		Token: token,
		User: types.UserSummary{
			ID:           user.ID,
			Name:         user.Name,
			Phone:        user.Phone,
			RewardPoints: user.RewardPoints,
		},
	})
	return nil
}

func (u *User) Profile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("not authenticated")
	}

	user, err := u.Users.FindById(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusNotFound, "user not found")
	}

	stats, err := u.ReportService.UserStats(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, types.UserProfileResponse{
		User: types.ProfileUser{
			ID:           user.ID,
			Name:         user.Name,
			Phone:        user.Phone,
			Address:      user.Address,
			QrCode:       user.QrCode,
			RewardPoints: user.RewardPoints,
			CreatedAt:    user.CreatedAt,
		},
		Statistics: *stats,
	})
	return nil
}
