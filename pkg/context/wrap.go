package context

import (
	"errors"
	"net/http"

	"EcoBin/pkg/log"
	"EcoBin/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID  = "user_id"
	CtxAdminID = "admin_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			// 非业务错误不对外暴露细节
			log.L.Error("handler error",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: http.StatusInternalServerError,
				Msg:  "internal server error",
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint, error) {
	return getSubjectID(c, CtxUserID)
}

func GetAdminID(c *gin.Context) (uint, error) {
	return getSubjectID(c, CtxAdminID)
}

func getSubjectID(c *gin.Context, key string) (uint, error) {
	v, ok := c.Get(key)
	if !ok {
		return 0, errors.New(key + " not found in context")
	}

	id, ok := v.(uint)
	if !ok {
		return 0, errors.New(key + " has wrong type")
	}

	return id, nil
}
