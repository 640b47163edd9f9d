package handler

import (
	"Foodgram/config"
	"Foodgram/middleware"
	"Foodgram/pkg/context"
	"Foodgram/pkg/response"
	"Foodgram/service"
	"Foodgram/types"
	gocontext "context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Recipe struct {
	Config              *config.Config
	RecipeService       service.IRecipeService
	ShortLinkService    service.IShortLinkService
	ShoppingListService service.IShoppingListService
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/recipes")
	g.GET("", optional, context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/download_shopping_cart", authorize, context.Wrap(h.DownloadShoppingCart))
	g.GET("/:id", optional, context.Wrap(h.Get))
	g.PATCH("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.GET("/:id/get-link", context.Wrap(h.GetLink))
	g.POST("/:id/favorite", authorize, context.Wrap(h.AddFavorite))
	g.DELETE("/:id/favorite", authorize, context.Wrap(h.RemoveFavorite))
	g.POST("/:id/shopping_cart", authorize, context.Wrap(h.AddToCart))
	g.DELETE("/:id/shopping_cart", authorize, context.Wrap(h.RemoveFromCart))
}

// List 食谱列表，支持作者、标签、收藏、购物车、名称前缀筛选
func (h *Recipe) List(c *gin.Context) error {
	var req types.RecipeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	page, err := h.RecipeService.List(c.Request.Context(), context.GetViewer(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, page)
	return nil
}

func (h *Recipe) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	recipe, err := h.RecipeService.Get(c.Request.Context(), context.GetViewer(c), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, recipe)
	return nil
}

// Create 发布食谱
func (h *Recipe) Create(c *gin.Context) error {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	recipe, err := h.RecipeService.Create(c.Request.Context(), context.GetViewer(c), &req)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, recipe)
	return nil
}

// Update 修改食谱，仅作者可操作
func (h *Recipe) Update(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}
	recipe, err := h.RecipeService.Update(c.Request.Context(), context.GetViewer(c), id, &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, recipe)
	return nil
}

func (h *Recipe) Delete(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.RecipeService.Delete(c.Request.Context(), context.GetViewer(c), id); err != nil {
		return bizError(err)
	}
	response.NoContent(c)
	return nil
}

// GetLink 获取食谱短链，首次请求时生成
func (h *Recipe) GetLink(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	code, err := h.ShortLinkService.GetOrCreate(c.Request.Context(), id)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, types.ShortLinkResponse{ShortLink: h.Config.ShortLink.Link(requestBase(c), code)})
	return nil
}

func (h *Recipe) AddFavorite(c *gin.Context) error {
	return h.addMember(c, h.RecipeService.AddFavorite)
}

func (h *Recipe) RemoveFavorite(c *gin.Context) error {
	return h.removeMember(c, h.RecipeService.RemoveFavorite)
}

func (h *Recipe) AddToCart(c *gin.Context) error {
	return h.addMember(c, h.RecipeService.AddToCart)
}

func (h *Recipe) RemoveFromCart(c *gin.Context) error {
	return h.removeMember(c, h.RecipeService.RemoveFromCart)
}

// DownloadShoppingCart 下载购物清单，纯文本附件
func (h *Recipe) DownloadShoppingCart(c *gin.Context) error {
	report, err := h.ShoppingListService.Report(c.Request.Context(), context.GetViewer(c))
	if err != nil {
		return bizError(err)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ShoppingListFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
	return nil
}

type addFunc func(ctx gocontext.Context, viewer types.Viewer, recipeID uint64) (*types.RecipeMinified, error)

type removeFunc func(ctx gocontext.Context, viewer types.Viewer, recipeID uint64) error

func (h *Recipe) addMember(c *gin.Context, add addFunc) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := add(c.Request.Context(), context.GetViewer(c), id)
	if err != nil {
		return bizError(err)
	}
	response.Created(c, item)
	return nil
}

func (h *Recipe) removeMember(c *gin.Context, remove removeFunc) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := remove(c.Request.Context(), context.GetViewer(c), id); err != nil {
		return bizError(err)
	}
	response.NoContent(c)
	return nil
}

// requestBase 未配置短链前缀时使用当前请求的协议与域名
func requestBase(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
