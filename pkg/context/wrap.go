package context

import (
	"Foodgram/pkg/log"
	"Foodgram/pkg/response"
	"Foodgram/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
)

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
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  "系统异常",
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// GetViewer 未登录时返回匿名访客
func GetViewer(c *gin.Context) types.Viewer {
	uid, err := GetUserID(c)
	if err != nil {
		return types.Anonymous
	}
	return types.ViewerOf(uid)
}
