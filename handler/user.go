package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(u.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/users")
	g.GET("", optional, context.Wrap(u.List))
	g.GET("/me", authorize, context.Wrap(u.Me))
	g.GET("/subscriptions", authorize, context.Wrap(u.Subscriptions))
	g.GET("/:id", optional, context.Wrap(u.Get))
	g.POST("/:id/subscribe", authorize, context.Wrap(u.Subscribe))
	g.DELETE("/:id/subscribe", authorize, context.Wrap(u.Unsubscribe))
}

func (u *User) List(c *gin.Context) error {
	var req types.PageQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	page, err := u.UserService.List(c.Request.Context(), context.GetViewer(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

func (u *User) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := u.UserService.Get(c.Request.Context(), context.GetViewer(c), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, user)
	return nil
}

func (u *User) Me(c *gin.Context) error {
	user, err := u.UserService.Me(c.Request.Context(), context.GetViewer(c))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, user)
	return nil
}

// Subscriptions 我的关注列表
func (u *User) Subscriptions(c *gin.Context) error {
	var req types.SubscriptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	page, err := u.UserService.Subscriptions(c.Request.Context(), context.GetViewer(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

// Subscribe 关注用户
func (u *User) Subscribe(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.SubscribeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	user, err := u.UserService.Subscribe(c.Request.Context(), context.GetViewer(c), id, req.RecipesLimit)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, user)
	return nil
}

// Unsubscribe 取消关注
func (u *User) Unsubscribe(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := u.UserService.Unsubscribe(c.Request.Context(), context.GetViewer(c), id); err != nil {
		return bizError(err)
	}
	response.NoContent(c)
	return nil
}
