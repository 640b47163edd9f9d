package dao

import (
	"Foodgram/models"
	"Foodgram/pkg/testdb"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	return testdb.New(t)
}

func insertUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("insert user %s: %v", username, err)
	}
	return u
}

func insertRecipe(t *testing.T, db *gorm.DB, author *models.User, name string, pubDate time.Time) *models.Recipe {
	t.Helper()
	r := &models.Recipe{Name: name, Text: name, CookingTime: 10, AuthorID: author.ID, PubDate: pubDate}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("insert recipe %s: %v", name, err)
	}
	return r
}

func insertTag(t *testing.T, db *gorm.DB, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: slug, Slug: slug}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("insert tag %s: %v", slug, err)
	}
	return tag
}

func insertIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	i := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(i).Error; err != nil {
		t.Fatalf("insert ingredient %s: %v", name, err)
	}
	return i
}
