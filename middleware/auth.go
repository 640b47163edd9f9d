package middleware

import (
	"Foodgram/pkg/context"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/response"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var errNoToken = errors.New("缺少 Authorization")

// Auth 必须登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, secret)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 未携带 token 按匿名访客处理，携带了无效 token 仍然拒绝
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, secret)
		if errors.Is(err, errNoToken) {
			c.Next()
			return
		}
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errNoToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("Authorization 格式错误")
	}
	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
	if err != nil {
		return nil, errors.New("token 无效或已过期")
	}
	return claims, nil
}
