package handler

import (
	"Foodgram/pkg/context"
	"Foodgram/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShortLink 短链跳转，挂在根路径下
type ShortLink struct {
	ShortLinkService service.IShortLinkService
}

func (s *ShortLink) RegisterRouter(r gin.IRouter) {
	r.GET("/s/:code", context.Wrap(s.Redirect))
}

// Redirect 跳转到食谱详情页
func (s *ShortLink) Redirect(c *gin.Context) error {
	recipeID, err := s.ShortLinkService.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		return bizError(err)
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/recipes/%d", recipeID))
	return nil
}
