package handler

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/shortcode"
	"Foodgram/pkg/testdb"
	"Foodgram/service"
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testdb.New(t)
	conf := &config.Config{
		Jwt:        &config.Jwt{Secret: testSecret, ExpiresIn: 3600},
		ShortLink:  &config.ShortLink{BaseURL: "https://foodgram.test"},
		Pagination: &config.Pagination{DefaultLimit: 6, MaxLimit: 100},
	}

	users := dao.NewUsers(db)
	recipeDAO := dao.NewRecipeDAO(db)
	tagDAO := dao.NewTagDAO(db)
	ingredientDAO := dao.NewIngredientDAO(db)
	favorites := service.NewFavoriteSet(dao.NewFavoriteDAO(db), nil)
	cart := service.NewCartSet(dao.NewCartDAO(db), nil)
	subscriptions := service.NewSubscriptionSet(dao.NewSubscriptionDAO(db), nil)
	view := &service.AggregationView{
		Users: users, RecipeDAO: recipeDAO, TagDAO: tagDAO, IngredientDAO: ingredientDAO,
		Favorites: favorites, Cart: cart, Subscriptions: subscriptions,
	}
	links := &service.ShortLinkService{ShortLinkDAO: dao.NewShortLinkDAO(db), RecipeDAO: recipeDAO, Generate: shortcode.Random}

	recipe := &Recipe{
		Config: conf,
		RecipeService: &service.RecipeService{
			Config: conf, RecipeDAO: recipeDAO, TagDAO: tagDAO, IngredientDAO: ingredientDAO,
			Favorites: favorites, Cart: cart, View: view,
		},
		ShortLinkService:    links,
		ShoppingListService: &service.ShoppingListService{Users: users, IngredientDAO: ingredientDAO, Cart: cart},
	}
	user := &User{
		Config:      conf,
		UserService: &service.UserService{Config: conf, Users: users, Following: subscriptions, View: view},
	}

	r := gin.New()
	(&ShortLink{ShortLinkService: links}).RegisterRouter(r)
	api := r.Group("/api")
	recipe.RegisterRouter(api)
	user.RegisterRouter(api)
	return &testServer{t: t, db: db, engine: r}
}

func (s *testServer) user(username string) *models.User {
	s.t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(s.t, s.db.Create(u).Error)
	return u
}

func (s *testServer) token(u *models.User) string {
	s.t.Helper()
	token, err := jwt.GenerateToken([]byte(testSecret), u.ID, jwt.TypeAccess, time.Hour)
	require.NoError(s.t, err)
	return token
}

// do 发起请求，u 为 nil 时匿名访问
func (s *testServer) do(method, path string, u *models.User, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if u != nil {
		req.Header.Set("Authorization", "Bearer "+s.token(u))
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

type envelope[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}
