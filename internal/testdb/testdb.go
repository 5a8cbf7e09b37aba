// Package testdb opens migrated in-memory sqlite databases for tests.
package testdb

import (
	"fmt"
	"testing"

	"Foodgram/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a private database that lives until the test ends. The pool
// holds a single connection so concurrent callers queue like they would on
// a locked table.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// User inserts an active user.
func User(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Email: username + "@example.com", Username: username, FirstName: username, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func Ingredient(t testing.TB, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	i := &models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(i).Error)
	return i
}

func Tag(t testing.TB, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// Line is an (ingredient, amount) pair for Recipe.
type Line struct {
	Ingredient *models.Ingredient
	Amount     int
}

// Recipe inserts a recipe with its line items and tags.
func Recipe(t testing.TB, db *gorm.DB, id uint64, author *models.User, name string, tags []*models.Tag, lines ...Line) *models.Recipe {
	t.Helper()
	r := &models.Recipe{ID: id, AuthorID: author.ID, Name: name, Image: "/media/recipes/x.png", Text: "text", CookingTime: 10}
	require.NoError(t, db.Create(r).Error)
	for _, tag := range tags {
		require.NoError(t, db.Create(&models.RecipeTag{RecipeID: id, TagID: tag.ID}).Error)
	}
	for _, l := range lines {
		require.NoError(t, db.Create(&models.RecipeIngredient{RecipeID: id, IngredientID: l.Ingredient.ID, Amount: l.Amount}).Error)
	}
	return r
}

func Relate(t testing.TB, db *gorm.DB, user *models.User, recipe *models.Recipe, kind models.RelationKind) {
	t.Helper()
	require.NoError(t, db.Create(&models.RecipeRelation{UserID: user.ID, RecipeID: recipe.ID, Kind: kind}).Error)
}
