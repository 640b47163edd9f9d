package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: "success", Data: data})
}

// Created 新建成功，返回 201
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: 0, Msg: "success", Data: data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 业务错误，HTTP 状态码与业务码保持一致
func Fail(c *gin.Context, code int, msg string) {
	status := code
	if status < 400 || status > 599 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Response{Code: code, Msg: msg})
}
