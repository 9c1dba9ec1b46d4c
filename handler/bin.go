package handler

import (
	"fmt"
	"strings"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/middleware"
	"EcoBin/pkg/context"
	"EcoBin/pkg/jwt"
	"EcoBin/pkg/log"
	"EcoBin/pkg/points"
	"EcoBin/pkg/response"
	"EcoBin/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Bin struct {
	Config *config.Config
	Users  *dao.Users
}

func (b *Bin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(b.Config.Jwt.Secret), jwt.KindUser, middleware.UserResolver(b.Users))
	g := r.Group("/bin")
	g.Use(authorize)
	g.POST("/unlock", context.Wrap(b.Unlock))
}

// Unlock 开箱只是一个确认应答，没有真实的硬件协议，记录意图即可
func (b *Bin) Unlock(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("not authenticated")
	}

	var req types.UnlockBinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("waste_type is required")
	}

	wasteType := strings.ToLower(req.WasteType)
	if !points.ValidWasteType(wasteType) {
		return response.BadRequest(`waste_type must be either "dry" or "wet"`)
	}

	user, err := b.Users.FindById(c.Request.Context(), userID)
	if err != nil {
		return response.Unauthorized("user not found")
	}

	log.L.Info("bin unlock requested",
		zap.Uint("user_id", user.ID),
		zap.String("waste_type", wasteType),
	)

	title := strings.ToUpper(wasteType[:1]) + wasteType[1:]
	response.Success(c, types.UnlockBinResponse{
		Message:     fmt.Sprintf("%s bin unlocked successfully", title),
		WasteType:   wasteType,
		User:        user.Name,
		Instruction: fmt.Sprintf("Please dispose your %s waste now", wasteType),
	})
	return nil
}
