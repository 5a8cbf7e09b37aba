package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTxManager,
	NewUsers,
	NewIngredientDAO,
	NewTagDAO,
	NewRecipeDAO,
	NewRelationDAO,
	NewUserFollowDAO,
)
