package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"Foodgram/internal/testdb"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/response"
	"Foodgram/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_ShoppingCartFlow(t *testing.T) {
	t.Parallel()
	a := newApp(t)

	user := testdb.User(t, a.db, "cook")
	salt := testdb.Ingredient(t, a.db, "salt", "g")
	recipe := testdb.Recipe(t, a.db, 5, user, "soup", nil, testdb.Line{Ingredient: salt, Amount: 4})
	token := a.token(user)

	w := a.do(http.MethodGet, "/api/recipes/download_shopping_cart", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = a.do(http.MethodPost, "/api/recipes/5/shopping_cart", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	short := decode[types.RecipeShort](t, w)
	assert.Equal(t, recipe.ID, short.ID)

	w = a.do(http.MethodPost, "/api/recipes/5/shopping_cart", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeShoppingCartExists, decode[response.Response](t, w).Error)

	w = a.do(http.MethodGet, "/api/recipes/download_shopping_cart?format=txt", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "shopping_list.txt")
	assert.Contains(t, w.Body.String(), "salt (g) — 4")

	w = a.do(http.MethodGet, "/api/recipes/download_shopping_cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	w = a.do(http.MethodDelete, "/api/recipes/5/shopping_cart", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodDelete, "/api/recipes/5/shopping_cart", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecipe_Auth(t *testing.T) {
	t.Parallel()
	a := newApp(t)

	user := testdb.User(t, a.db, "cook")
	testdb.Recipe(t, a.db, 1, user, "soup", nil)

	w := a.do(http.MethodPost, "/api/recipes/1/favorite", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodGet, "/api/recipes/download_shopping_cart", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, a.db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	w = a.do(http.MethodPost, "/api/recipes/1/favorite", a.token(user), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// reads stay public
	w = a.do(http.MethodGet, "/api/recipes/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecipe_NotFoundAndBadID(t *testing.T) {
	t.Parallel()
	a := newApp(t)
	token := a.token(testdb.User(t, a.db, "cook"))

	w := a.do(http.MethodGet, "/api/recipes/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errs.CodeRecipeNotFound, decode[response.Response](t, w).Error)

	w = a.do(http.MethodPost, "/api/recipes/404/favorite", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/recipes/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipe_CreateAndList(t *testing.T) {
	t.Parallel()
	a := newApp(t)

	author := testdb.User(t, a.db, "author")
	salt := testdb.Ingredient(t, a.db, "salt", "g")
	tag := testdb.Tag(t, a.db, "Lunch", "lunch")
	token := a.token(author)

	body := types.RecipeWriteRequest{
		Name:        "Soup",
		Text:        "Boil.",
		CookingTime: 30,
		Image:       "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7",
		Tags:        []uint64{tag.ID},
		Ingredients: []types.IngredientAmountRequest{{ID: salt.ID, Amount: 5}},
	}
	w := a.do(http.MethodPost, "/api/recipes", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[types.RecipeDetail](t, w)
	assert.Equal(t, "Soup", created.Name)

	body.Tags = []uint64{tag.ID, tag.ID}
	w = a.do(http.MethodPost, "/api/recipes", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decode[response.Response](t, w)
	assert.Equal(t, errs.CodeTagsDuplicate, res.Error)
	assert.Equal(t, map[string]any{"field": "tags"}, res.Data)

	for i := 0; i < 3; i++ {
		testdb.Recipe(t, a.db, uint64(i+1), author, fmt.Sprintf("dish %d", i), nil)
	}

	w = a.do(http.MethodGet, "/api/recipes?page=1&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[response.Page[types.RecipeDetail]](t, w)
	assert.Equal(t, int64(4), page.Count)
	assert.Len(t, page.Results, 2)
	require.NotNil(t, page.Next)
	assert.Contains(t, *page.Next, "page=2")
	assert.Nil(t, page.Previous)

	w = a.do(http.MethodGet, "/api/recipes?limit=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipe_ShortLink(t *testing.T) {
	t.Parallel()
	a := newApp(t)
	testdb.Recipe(t, a.db, 77, testdb.User(t, a.db, "cook"), "soup", nil)

	w := a.do(http.MethodGet, "/api/recipes/77/get-link", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	link := decode[types.ShortLinkResponse](t, w).ShortLink
	require.True(t, strings.Contains(link, "/s/"))

	code := link[strings.LastIndex(link, "/s/")+3:]
	w = a.do(http.MethodGet, "/s/"+code, "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasSuffix(w.Header().Get("Location"), "/recipes/77"))

	w = a.do(http.MethodGet, "/s/zzzzzzzzzz", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
