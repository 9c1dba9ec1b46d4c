package handler

import (
	"strings"

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

type Disposal struct {
	Config          *config.Config
	Users           *dao.Users
	DisposalService service.IDisposalService
}

func (d *Disposal) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(d.Config.Jwt.Secret), jwt.KindUser, middleware.UserResolver(d.Users))
	g := r.Group("/disposal")
	g.Use(authorize)
	g.POST("/log", context.Wrap(d.Log))
}

func (d *Disposal) Log(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("not authenticated")
	}

	var req types.LogDisposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("waste_type and weight are required")
	}

	disposal, total, err := d.DisposalService.Record(
		c.Request.Context(),
		userID,
		strings.ToLower(req.WasteType),
		req.Weight,
	)
	if err != nil {
		return err
	}

	response.Created(c, types.LogDisposalResponse{
		Disposal: types.DisposalItem{
			ID:           disposal.ID,
			WasteType:    disposal.WasteType,
			Weight:       disposal.Weight,
			PointsEarned: disposal.PointsEarned,
			Timestamp:    disposal.Timestamp,
		},
		TotalPoints: total,
	})
	return nil
}
