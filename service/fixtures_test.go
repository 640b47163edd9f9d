package service

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/models"
	"Foodgram/pkg/shortcode"
	"Foodgram/pkg/testdb"
	"Foodgram/types"
	"testing"
	"time"

	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	view     *AggregationView
	recipes  *RecipeService
	users    *UserService
	links    *ShortLinkService
	shopping *ShoppingListService
	seed     *SeedService
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithCache(t, nil)
}

func newFixtureWithCache(t *testing.T, storage *cache.MembershipStorage) *fixture {
	t.Helper()
	db := testdb.New(t)
	conf := &config.Config{Pagination: &config.Pagination{DefaultLimit: 6, MaxLimit: 100}}

	users := dao.NewUsers(db)
	recipeDAO := dao.NewRecipeDAO(db)
	tagDAO := dao.NewTagDAO(db)
	ingredientDAO := dao.NewIngredientDAO(db)
	favorites := NewFavoriteSet(dao.NewFavoriteDAO(db), storage)
	cart := NewCartSet(dao.NewCartDAO(db), storage)
	subscriptions := NewSubscriptionSet(dao.NewSubscriptionDAO(db), storage)

	view := &AggregationView{
		Users:         users,
		RecipeDAO:     recipeDAO,
		TagDAO:        tagDAO,
		IngredientDAO: ingredientDAO,
		Favorites:     favorites,
		Cart:          cart,
		Subscriptions: subscriptions,
	}
	return &fixture{
		db:   db,
		view: view,
		recipes: &RecipeService{
			Config:        conf,
			RecipeDAO:     recipeDAO,
			TagDAO:        tagDAO,
			IngredientDAO: ingredientDAO,
			Favorites:     favorites,
			Cart:          cart,
			View:          view,
		},
		users: &UserService{
			Config:    conf,
			Users:     users,
			Following: subscriptions,
			View:      view,
		},
		links: &ShortLinkService{
			ShortLinkDAO: dao.NewShortLinkDAO(db),
			RecipeDAO:    recipeDAO,
			Generate:     shortcode.Random,
		},
		shopping: &ShoppingListService{
			Users:         users,
			IngredientDAO: ingredientDAO,
			Cart:          cart,
		},
		seed: &SeedService{
			Users:         users,
			TagDAO:        tagDAO,
			IngredientDAO: ingredientDAO,
		},
	}
}

func (f *fixture) user(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", FirstName: username}
	if err := f.db.Create(u).Error; err != nil {
		t.Fatalf("insert user %s: %v", username, err)
	}
	return u
}

func (f *fixture) tag(t *testing.T, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: slug, Slug: slug}
	if err := f.db.Create(tag).Error; err != nil {
		t.Fatalf("insert tag %s: %v", slug, err)
	}
	return tag
}

func (f *fixture) ingredient(t *testing.T, name, unit string) *models.Ingredient {
	t.Helper()
	i := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := f.db.Create(i).Error; err != nil {
		t.Fatalf("insert ingredient %s: %v", name, err)
	}
	return i
}

// recipe 直接写库，绕过校验，用于准备列表数据
func (f *fixture) recipe(t *testing.T, author *models.User, name string, pubDate time.Time, lines ...models.RecipeIngredient) *models.Recipe {
	t.Helper()
	r := &models.Recipe{Name: name, Text: name, CookingTime: 10, AuthorID: author.ID, PubDate: pubDate}
	if err := f.db.Create(r).Error; err != nil {
		t.Fatalf("insert recipe %s: %v", name, err)
	}
	for _, l := range lines {
		l.RecipeID = r.ID
		if err := f.db.Create(&l).Error; err != nil {
			t.Fatalf("insert recipe line: %v", err)
		}
	}
	return r
}

func line(i *models.Ingredient, amount int) models.RecipeIngredient {
	return models.RecipeIngredient{IngredientID: i.ID, Amount: amount}
}

func viewerOf(u *models.User) types.Viewer {
	return types.ViewerOf(u.ID)
}

func ptr[T any](v T) *T {
	return &v
}
