package dao

import (
	"Foodgram/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeIDs(recipes []*models.Recipe) []uint64 {
	ids := make([]uint64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRecipeFindOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewRecipeDAO(db)
	author := insertUser(t, db, "author")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	old := insertRecipe(t, db, author, "old", base.Add(-time.Hour))
	tieB := &models.Recipe{ID: 200, Name: "tie-b", Text: "x", CookingTime: 1, AuthorID: author.ID, PubDate: base}
	tieA := &models.Recipe{ID: 100, Name: "tie-a", Text: "x", CookingTime: 1, AuthorID: author.ID, PubDate: base}
	require.NoError(t, db.Create(tieB).Error)
	require.NoError(t, db.Create(tieA).Error)
	newest := insertRecipe(t, db, author, "newest", base.Add(time.Hour))

	recipes, total, err := d.Find(ctx, &RecipeQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, []uint64{newest.ID, 100, 200, old.ID}, recipeIDs(recipes))

	page, total, err := d.Find(ctx, &RecipeQuery{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, []uint64{200, old.ID}, recipeIDs(page))
}

func TestRecipeFindFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewRecipeDAO(db)

	alice := insertUser(t, db, "alice")
	bob := insertUser(t, db, "bob")
	now := time.Now()
	pancakes := insertRecipe(t, db, alice, "Pancakes", now)
	pasta := insertRecipe(t, db, alice, "Pasta", now.Add(-time.Minute))
	soup := insertRecipe(t, db, bob, "Soup", now.Add(-2*time.Minute))

	breakfast := insertTag(t, db, "breakfast")
	lunch := insertTag(t, db, "lunch")
	require.NoError(t, db.Create(&[]models.RecipeTag{
		{RecipeID: pancakes.ID, TagID: breakfast.ID},
		{RecipeID: pasta.ID, TagID: lunch.ID},
		{RecipeID: soup.ID, TagID: lunch.ID},
		{RecipeID: soup.ID, TagID: breakfast.ID},
	}).Error)

	got, _, err := d.Find(ctx, &RecipeQuery{AuthorID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint64{pancakes.ID, pasta.ID}, recipeIDs(got))

	// 多个标签是“任一匹配”，且同一食谱不重复
	got, _, err = d.Find(ctx, &RecipeQuery{TagSlugs: []string{"breakfast", "lunch"}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{pancakes.ID, pasta.ID, soup.ID}, recipeIDs(got))

	got, _, err = d.Find(ctx, &RecipeQuery{TagSlugs: []string{"breakfast"}, AuthorID: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint64{soup.ID}, recipeIDs(got))

	got, _, err = d.Find(ctx, &RecipeQuery{NamePrefix: "pa"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{pancakes.ID, pasta.ID}, recipeIDs(got))

	got, _, err = d.Find(ctx, &RecipeQuery{NamePrefix: "%"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, _, err = d.Find(ctx, &RecipeQuery{Restrict: true, OnlyIDs: []uint64{soup.ID, pasta.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{pasta.ID, soup.ID}, recipeIDs(got))

	got, total, err := d.Find(ctx, &RecipeQuery{Restrict: true})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, total)

	got, _, err = d.Find(ctx, &RecipeQuery{ExcludeIDs: []uint64{pancakes.ID}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{pasta.ID, soup.ID}, recipeIDs(got))
}

func TestRecipeReplaceIngredients(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewRecipeDAO(db)
	lines := NewIngredientDAO(db)

	author := insertUser(t, db, "cook")
	sugar := insertIngredient(t, db, "sugar", "g")
	egg := insertIngredient(t, db, "egg", "шт")
	flour := insertIngredient(t, db, "flour", "g")
	tag := insertTag(t, db, "dessert")

	recipe := &models.Recipe{Name: "Cake", Text: "Bake it", CookingTime: 40, AuthorID: author.ID}
	require.NoError(t, d.CreateWithRelations(ctx, recipe, []uint64{tag.ID}, []models.RecipeIngredient{
		{IngredientID: sugar.ID, Amount: 200},
		{IngredientID: egg.ID, Amount: 2},
	}))
	pubDate := recipe.PubDate

	recipe.Name = "Better cake"
	recipe.PubDate = time.Time{}
	require.NoError(t, d.UpdateWithRelations(ctx, recipe, []uint64{tag.ID}, []models.RecipeIngredient{
		{IngredientID: flour.ID, Amount: 300},
		{IngredientID: egg.ID, Amount: 3},
	}))

	got, err := lines.LinesByRecipeIDs(ctx, []uint64{recipe.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "flour", got[0].Name)
	assert.Equal(t, 300, got[0].Amount)
	assert.Equal(t, "egg", got[1].Name)
	assert.Equal(t, "шт", got[1].MeasurementUnit)
	assert.Equal(t, 3, got[1].Amount)

	var sugarRows int64
	require.NoError(t, db.Model(&models.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipe.ID, sugar.ID).
		Count(&sugarRows).Error)
	assert.Zero(t, sugarRows)

	stored, err := d.FindById(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Better cake", stored.Name)
	assert.True(t, stored.PubDate.Equal(pubDate), "pub_date must not change on update")
}

// 事务内任何一步失败，整个写入回滚
func TestRecipeCreateRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewRecipeDAO(db)
	author := insertUser(t, db, "cook")
	egg := insertIngredient(t, db, "egg", "шт")

	recipe := &models.Recipe{Name: "Omelette", Text: "Fry", CookingTime: 5, AuthorID: author.ID}
	err := d.CreateWithRelations(ctx, recipe, nil, []models.RecipeIngredient{
		{IngredientID: egg.ID, Amount: 2},
		{IngredientID: egg.ID, Amount: 3},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipeByAuthors(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewRecipeDAO(db)

	alice := insertUser(t, db, "alice")
	bob := insertUser(t, db, "bob")
	carol := insertUser(t, db, "carol")
	now := time.Now()
	a1 := insertRecipe(t, db, alice, "a1", now.Add(-time.Hour))
	a2 := insertRecipe(t, db, alice, "a2", now)
	b1 := insertRecipe(t, db, bob, "b1", now)

	recipes, err := d.FindByAuthors(ctx, []uint64{alice.ID, bob.ID}, 0)
	require.NoError(t, err)
	ids := recipeIDs(recipes)
	assert.Len(t, ids, 3)
	assert.Less(t, indexOf(ids, a2.ID), indexOf(ids, a1.ID))
	assert.Contains(t, ids, b1.ID)

	// 每个作者只取最近一条，限制在查询中完成
	recipes, err = d.FindByAuthors(ctx, []uint64{alice.ID, bob.ID}, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{a2.ID, b1.ID}, recipeIDs(recipes))
	for _, r := range recipes {
		assert.NotZero(t, r.AuthorID)
		assert.NotEmpty(t, r.Name)
	}

	recipes, err = d.FindByAuthors(ctx, []uint64{alice.ID}, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a2.ID, a1.ID}, recipeIDs(recipes))

	counts, err := d.CountByAuthors(ctx, []uint64{alice.ID, bob.ID, carol.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[alice.ID])
	assert.Equal(t, int64(1), counts[bob.ID])
	assert.Zero(t, counts[carol.ID])
}

func TestRecipeDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewRecipeDAO(db)
	author := insertUser(t, db, "cook")
	egg := insertIngredient(t, db, "egg", "шт")
	tag := insertTag(t, db, "breakfast")

	recipe := &models.Recipe{Name: "Omelette", Text: "Fry", CookingTime: 5, AuthorID: author.ID}
	require.NoError(t, d.CreateWithRelations(ctx, recipe, []uint64{tag.ID}, []models.RecipeIngredient{{IngredientID: egg.ID, Amount: 2}}))
	_, err := NewFavoriteDAO(db).Insert(ctx, author.ID, recipe.ID)
	require.NoError(t, err)
	_, err = NewCartDAO(db).Insert(ctx, author.ID, recipe.ID)
	require.NoError(t, err)
	_, err = NewShortLinkDAO(db).TryInsert(ctx, recipe.ID, "abcde")
	require.NoError(t, err)

	require.NoError(t, d.DeleteCascade(ctx, recipe.ID))

	for _, model := range []any{&models.Recipe{}, &models.RecipeTag{}, &models.RecipeIngredient{}, &models.Favorite{}, &models.CartEntry{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zerof(t, count, "%T rows left after delete", model)
	}

	// 短链编码永久占用
	link, err := NewShortLinkDAO(db).GetByCode(ctx, "abcde")
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, recipe.ID, link.RecipeID)
}

func indexOf(ids []uint64, id uint64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
