package context

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"Foodgram/pkg/errs"
	"Foodgram/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(t *testing.T, h HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET("/x", Wrap(h))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestWrap_ErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		status   int
		wantCode string
	}{
		{"not found", errs.NotFound(errs.CodeRecipeNotFound, "recipe not found"), http.StatusNotFound, errs.CodeRecipeNotFound},
		{"exists", errs.AlreadyExists(errs.CodeFavoriteExists, "already in favorites"), http.StatusBadRequest, errs.CodeFavoriteExists},
		{"invalid wrapped", fmt.Errorf("create: %w", errs.Invalid(errs.CodeTagsDuplicate, "dup")), http.StatusBadRequest, errs.CodeTagsDuplicate},
		{"forbidden", errs.Forbidden(errs.CodeNotAuthor, "not yours"), http.StatusForbidden, errs.CodeNotAuthor},
		{"unauthenticated", errs.Unauthenticated("login"), http.StatusUnauthorized, errs.CodeAuthenticationRequired},
		{"infra", errs.Infra("load", errors.New("db down")), http.StatusServiceUnavailable, errs.CodeInfrastructureUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, func(*gin.Context) error { return tt.err })
			assert.Equal(t, tt.status, w.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.wantCode, body.Error)
		})
	}
}

func TestWrap_PlainAndBizErrors(t *testing.T) {
	t.Parallel()

	w := serve(t, func(*gin.Context) error { return errors.New("boom") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")

	w = serve(t, func(*gin.Context) error { return response.NewError(http.StatusTeapot, "tea") })
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, w.Body.String(), "tea")
}

func TestWrap_FieldErrorCarriesField(t *testing.T) {
	t.Parallel()

	w := serve(t, func(*gin.Context) error {
		return errs.InvalidField("cooking_time", errs.CodeInvalidField, "must be at least 1")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"cooking_time"`)
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetUserID(c)
	assert.True(t, errs.Is(err, errs.KindUnauthenticated))
	assert.Zero(t, OptionalUserID(c))

	c.Set(CtxUserID, uint64(42))
	uid, err := GetUserID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
}
