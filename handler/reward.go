package handler

import (
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

type Reward struct {
	Config        *config.Config
	Users         *dao.Users
	RewardService service.IRewardService
}

func (h *Reward) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), jwt.KindUser, middleware.UserResolver(h.Users))
	g := r.Group("/rewards")
	g.Use(authorize)
	g.GET("", context.Wrap(h.List))
	g.POST("/redeem", context.Wrap(h.Redeem))
}

func (h *Reward) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("not authenticated")
	}

	resp, err := h.RewardService.ListActive(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (h *Reward) Redeem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("not authenticated")
	}

	var req types.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("reward_id is required")
	}

	resp, err := h.RewardService.Redeem(c.Request.Context(), userID, req.RewardID)
	if err != nil {
		return err
	}

	response.Created(c, resp)
	return nil
}
