package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/internal/testdb"
	"Foodgram/pkg/hashid"
	"Foodgram/pkg/render"
	"Foodgram/pkg/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type env struct {
	db          *gorm.DB
	conf        *config.Config
	users       *UserService
	tags        *TagService
	ingredients *IngredientService
	relations   *RelationService
	shopping    *ShoppingListService
	follows     *FollowService
	recipes     *RecipeService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testdb.New(t)
	conf := config.Default()
	conf.Jwt.Secret = "test"
	conf.Media.Dir = t.TempDir()

	links, err := hashid.New(conf)
	require.NoError(t, err)

	tx := dao.NewTxManager(db)
	usersDAO := dao.NewUsers(db)
	followDAO := dao.NewUserFollowDAO(db)
	tagDAO := dao.NewTagDAO(db)
	ingredientDAO := dao.NewIngredientDAO(db)
	recipeDAO := dao.NewRecipeDAO(db)
	relationDAO := dao.NewRelationDAO(db)

	relations := &RelationService{RelationDAO: relationDAO, RecipeDAO: recipeDAO, Cache: cache.NewMemoryRelationStorage()}
	return &env{
		db:          db,
		conf:        conf,
		users:       &UserService{Config: conf, UsersRepo: usersDAO, FollowDAO: followDAO},
		tags:        &TagService{Config: conf, Tx: tx, TagDAO: tagDAO},
		ingredients: &IngredientService{Config: conf, Tx: tx, IngredientDAO: ingredientDAO},
		relations:   relations,
		shopping:    &ShoppingListService{Config: conf, RelationDAO: relationDAO, RecipeDAO: recipeDAO, Renderers: render.NewRegistry(conf)},
		follows:     &FollowService{Config: conf, FollowDAO: followDAO, UserDAO: usersDAO, RecipeDAO: recipeDAO},
		recipes: &RecipeService{
			Config:        conf,
			Tx:            tx,
			RecipeDAO:     recipeDAO,
			TagDAO:        tagDAO,
			IngredientDAO: ingredientDAO,
			UserDAO:       usersDAO,
			FollowDAO:     followDAO,
			Relations:     relations,
			Images:        storage.NewLocalImageStore(conf),
			Links:         links,
		},
	}
}

func imageURI(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func ptr[T any](v T) *T {
	return &v
}
