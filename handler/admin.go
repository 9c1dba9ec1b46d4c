package handler

import (
	"strconv"
	"time"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/middleware"
	"EcoBin/pkg/context"
	"EcoBin/pkg/jwt"
	"EcoBin/pkg/response"
	"EcoBin/service"
	"EcoBin/types"

	"github.com/gin-gonic/gin"
)

type Admin struct {
	Config          *config.Config
	Admins          *dao.Admins
	AdminService    service.IAdminService
	ReportService   service.IReportService
	RewardService   service.IRewardService
	DisposalService service.IDisposalService
}

func (a *Admin) RegisterRouter(r gin.IRouter) {
	r.POST("/admin/login", context.Wrap(a.Login))

	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret), jwt.KindAdmin, middleware.AdminResolver(a.Admins))
	g := r.Group("/admin")
	g.Use(authorize)
	g.GET("/users", context.Wrap(a.ListUsers))
	g.GET("/disposals", context.Wrap(a.ListDisposals))
	g.GET("/statistics", context.Wrap(a.Statistics))
	g.GET("/reports/monthly", context.Wrap(a.MonthlyReport))
	g.POST("/rewards", context.Wrap(a.CreateReward))
}

func (a *Admin) Login(c *gin.Context) error {
	var req types.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("username and password are required")
	}

	admin, token, err := a.AdminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	response.Success(c, types.AdminLoginResponse{
		Token: token,
		Admin: types.AdminSummary{
			ID:       admin.ID,
			Username: admin.Username,
		},
	})
	return nil
}

func (a *Admin) ListUsers(c *gin.Context) error {
	resp, err := a.ReportService.ListUsers(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Admin) ListDisposals(c *gin.Context) error {
	var query types.ListDisposalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.BadRequest("invalid query parameters")
	}

	items, err := a.DisposalService.List(c.Request.Context(), &query)
	if err != nil {
		return err
	}

	response.Success(c, types.ListDisposalsResponse{
		Disposals: items,
		Total:     len(items),
	})
	return nil
}

func (a *Admin) Statistics(c *gin.Context) error {
	resp, err := a.ReportService.GlobalStats(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// MonthlyReport month/year 缺省为当前月份
func (a *Admin) MonthlyReport(c *gin.Context) error {
	now := time.Now()
	month, err := intQuery(c, "month", int(now.Month()))
	if err != nil {
		return response.BadRequest("invalid month")
	}
	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		return response.BadRequest("invalid year")
	}

	resp, err := a.ReportService.Monthly(c.Request.Context(), month, year)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (a *Admin) CreateReward(c *gin.Context) error {
	var req types.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("name, description and points_required are required")
	}

	reward, err := a.RewardService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Created(c, types.CreateRewardResponse{
		Reward: types.RewardDetail{
			ID:             reward.ID,
			Name:           reward.Name,
			Description:    reward.Description,
			PointsRequired: reward.PointsRequired,
			Active:         reward.Active,
		},
	})
	return nil
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
