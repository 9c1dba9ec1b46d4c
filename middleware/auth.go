package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"EcoBin/dao"
	appctx "EcoBin/pkg/context"
	"EcoBin/pkg/jwt"
	"EcoBin/pkg/response"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Resolver 校验 token 主体在库中仍然存在
type Resolver func(ctx context.Context, id uint) error

// Auth 按主体类型鉴权。缺失、格式错误、过期、主体不存在
// 分别给出可区分的 401 消息，签名合法但类型不符的一律拒绝。
func Auth(secret []byte, kind string, resolve Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, kind, parts[1])
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				msg = "token has expired"
			}
			response.Abort(c, http.StatusUnauthorized, msg)
			return
		}

		if resolve != nil {
			if err := resolve(c.Request.Context(), claims.SubjectID); err != nil {
				response.Abort(c, http.StatusUnauthorized, kind+" not found")
				return
			}
		}

		if kind == jwt.KindAdmin {
			c.Set(appctx.CtxAdminID, claims.SubjectID)
		} else {
			c.Set(appctx.CtxUserID, claims.SubjectID)
		}

		c.Next()
	}
}

func UserResolver(users *dao.Users) Resolver {
	return func(ctx context.Context, id uint) error {
		_, err := users.FindById(ctx, id)
		return err
	}
}

func AdminResolver(admins *dao.Admins) Resolver {
	return func(ctx context.Context, id uint) error {
		_, err := admins.FindById(ctx, id)
		return err
	}
}
