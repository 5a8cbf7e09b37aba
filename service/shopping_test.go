package service

import (
	"context"
	"strings"
	"testing"

	"Foodgram/internal/testdb"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/render"
	"Foodgram/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	rows := []models.IngredientAmount{
		{RecipeID: 1, IngredientID: 1, Name: "сахар", MeasurementUnit: "г", Amount: 100},
		{RecipeID: 1, IngredientID: 2, Name: "мука", MeasurementUnit: "г", Amount: 500},
		{RecipeID: 2, IngredientID: 1, Name: "сахар", MeasurementUnit: "г", Amount: 50},
		// distinct row with the same name and unit
		{RecipeID: 2, IngredientID: 9, Name: "сахар", MeasurementUnit: "г", Amount: 5},
		{RecipeID: 2, IngredientID: 3, Name: "сахар", MeasurementUnit: "ст. л.", Amount: 2},
		{RecipeID: 3, IngredientID: 4, Name: "яйца", MeasurementUnit: "шт.", Amount: 3},
		{RecipeID: 3, IngredientID: 5, Name: "ёжевика", MeasurementUnit: "г", Amount: 40},
	}

	got := Aggregate(rows, language.Russian)
	want := []types.ShoppingItem{
		{Name: "ёжевика", MeasurementUnit: "г", Amount: 40},
		{Name: "мука", MeasurementUnit: "г", Amount: 500},
		{Name: "сахар", MeasurementUnit: "г", Amount: 155},
		{Name: "сахар", MeasurementUnit: "ст. л.", Amount: 2},
		{Name: "яйца", MeasurementUnit: "шт.", Amount: 3},
	}
	assert.Equal(t, want, got)
}

func TestAggregate_LatinUnderRussian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{name: "latin", names: []string{"Zucchini", "Apple", "Milk"}, want: []string{"Apple", "Milk", "Zucchini"}},
		{name: "case folded", names: []string{"Zucchini", "apple", "Milk"}, want: []string{"apple", "Milk", "Zucchini"}},
		{name: "cyrillic", names: []string{"Яблоко", "ёжевика", "Молоко"}, want: []string{"ёжевика", "Молоко", "Яблоко"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]models.IngredientAmount, 0, len(tt.names))
			for i, name := range tt.names {
				rows = append(rows, models.IngredientAmount{IngredientID: uint64(i + 1), Name: name, MeasurementUnit: "g", Amount: 1})
			}
			got := Aggregate(rows, language.Russian)
			names := make([]string, 0, len(got))
			for _, item := range got {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestShoppingListService_BuildSortsWithConfiguredLanguage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	require.Equal(t, "ru", e.conf.ShoppingList.Language)

	user := testdb.User(t, e.db, "cook")
	var lines []testdb.Line
	for _, name := range []string{"Zucchini", "Apple", "Milk"} {
		lines = append(lines, testdb.Line{Ingredient: testdb.Ingredient(t, e.db, name, "g"), Amount: 1})
	}
	r := testdb.Recipe(t, e.db, 1, user, "salad", nil, lines...)
	testdb.Relate(t, e.db, user, r, models.RelationShoppingCart)

	items, ok, err := e.shopping.Build(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, "Milk", items[1].Name)
	assert.Equal(t, "Zucchini", items[2].Name)
}

func TestAggregate_LargeAmounts(t *testing.T) {
	t.Parallel()

	rows := []models.IngredientAmount{
		{Name: "water", MeasurementUnit: "ml", Amount: 3_000_000_000},
		{Name: "water", MeasurementUnit: "ml", Amount: 3_000_000_000},
	}
	got := Aggregate(rows, language.English)
	require.Len(t, got, 1)
	assert.Equal(t, int64(6_000_000_000), got[0].Amount)
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Aggregate(nil, language.Russian))
}

func TestShoppingListService_Build(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	user := testdb.User(t, e.db, "cook")
	salt := testdb.Ingredient(t, e.db, "salt", "g")
	milk := testdb.Ingredient(t, e.db, "milk", "ml")
	r1 := testdb.Recipe(t, e.db, 1, user, "one", nil, testdb.Line{Ingredient: salt, Amount: 2}, testdb.Line{Ingredient: milk, Amount: 100})
	r2 := testdb.Recipe(t, e.db, 2, user, "two", nil, testdb.Line{Ingredient: salt, Amount: 3})
	testdb.Recipe(t, e.db, 3, user, "not in cart", nil, testdb.Line{Ingredient: salt, Amount: 1000})

	items, ok, err := e.shopping.Build(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, items)

	testdb.Relate(t, e.db, user, r1, models.RelationShoppingCart)
	testdb.Relate(t, e.db, user, r2, models.RelationShoppingCart)
	// favorites never reach the list
	testdb.Relate(t, e.db, user, r1, models.RelationFavorite)

	items, ok, err = e.shopping.Build(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []types.ShoppingItem{
		{Name: "milk", MeasurementUnit: "ml", Amount: 100},
		{Name: "salt", MeasurementUnit: "g", Amount: 5},
	}, items)
}

func TestShoppingListService_Export(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	user := testdb.User(t, e.db, "cook")
	salt := testdb.Ingredient(t, e.db, "salt", "g")
	r := testdb.Recipe(t, e.db, 1, user, "one", nil, testdb.Line{Ingredient: salt, Amount: 2})

	doc, ok, err := e.shopping.Export(ctx, user.ID, render.FormatTXT)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, doc)

	testdb.Relate(t, e.db, user, r, models.RelationShoppingCart)

	doc, ok, err = e.shopping.Export(ctx, user.ID, render.FormatTXT)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "shopping_list.txt", doc.Filename)
	assert.True(t, strings.Contains(string(doc.Body), "salt (g) — 2"))

	doc, ok, err = e.shopping.Export(ctx, user.ID, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "shopping_list.pdf", doc.Filename)
	assert.True(t, strings.HasPrefix(string(doc.Body), "%PDF"))

	_, _, err = e.shopping.Export(ctx, user.ID, "docx")
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
}

func TestShoppingListService_StoreUnavailable(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	sqlDB, err := e.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, ok, err := e.shopping.Build(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, errs.KindInfrastructure, errs.KindOf(err))
}
