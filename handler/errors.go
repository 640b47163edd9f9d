package handler

import (
	"Foodgram/pkg/response"
	"Foodgram/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bizError 业务错误转为带 HTTP 状态码的响应错误，其他错误原样返回按 500 处理
func bizError(err error) error {
	var e *service.Error
	if !errors.As(err, &e) {
		return err
	}
	switch e.Kind {
	case service.KindNotFound:
		return response.NewError(http.StatusNotFound, e.Msg)
	case service.KindForbidden:
		return response.NewError(http.StatusForbidden, e.Msg)
	case service.KindUnauthorized:
		return response.NewError(http.StatusUnauthorized, e.Msg)
	default:
		return response.NewError(http.StatusBadRequest, e.Msg)
	}
}

// paramID 解析路径中的 ID
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusNotFound, name+" 格式错误")
	}
	return id, nil
}
