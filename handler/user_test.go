package handler

import (
	"net/http"
	"testing"

	"Foodgram/internal/testdb"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/response"
	"Foodgram/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SubscribeFlow(t *testing.T) {
	t.Parallel()
	a := newApp(t)

	me := testdb.User(t, a.db, "me")
	chef := testdb.User(t, a.db, "chef")
	for i := uint64(1); i <= 3; i++ {
		testdb.Recipe(t, a.db, i, chef, "dish", nil)
	}
	token := a.token(me)

	w := a.do(http.MethodPost, "/api/users/2/subscribe?recipes_limit=1", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sub := decode[types.Subscription](t, w)
	assert.Equal(t, chef.ID, sub.ID)
	assert.True(t, sub.IsSubscribed)
	assert.Len(t, sub.Recipes, 1)
	assert.Equal(t, int64(3), sub.RecipesCount)

	w = a.do(http.MethodPost, "/api/users/2/subscribe", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeSubscriptionExists, decode[response.Response](t, w).Error)

	w = a.do(http.MethodPost, "/api/users/1/subscribe", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeSelfSubscribeForbidden, decode[response.Response](t, w).Error)

	w = a.do(http.MethodPost, "/api/users/2/subscribe?recipes_limit=x", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/users/subscriptions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[response.Page[types.Subscription]](t, w)
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Results, 1)
	assert.Len(t, page.Results[0].Recipes, 3)

	w = a.do(http.MethodGet, "/api/users/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[types.UserProfile](t, w).IsSubscribed)

	w = a.do(http.MethodDelete, "/api/users/2/subscribe", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = a.do(http.MethodDelete, "/api/users/2/subscribe", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUser_Me(t *testing.T) {
	t.Parallel()
	a := newApp(t)
	me := testdb.User(t, a.db, "me")

	w := a.do(http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodGet, "/api/users/me", a.token(me), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "me", decode[types.UserProfile](t, w).Username)

	w = a.do(http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[response.Page[types.UserProfile]](t, w).Count)
}

func TestIngredientAndTag_Read(t *testing.T) {
	t.Parallel()
	a := newApp(t)
	testdb.Ingredient(t, a.db, "salt", "g")
	testdb.Ingredient(t, a.db, "sugar", "g")
	testdb.Tag(t, a.db, "Lunch", "lunch")

	w := a.do(http.MethodGet, "/api/ingredients?name=sal", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]types.Ingredient](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "salt", items[0].Name)

	w = a.do(http.MethodGet, "/api/ingredients/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]types.Tag](t, w), 1)
}
