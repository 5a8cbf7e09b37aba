package dao

import (
	"errors"

	"Foodgram/models"
	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

// passthrough keeps not-found and duplicate errors raw for translate.
func passthrough(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return errs.Infra(op, err)
}

// translate maps store errors to domain kinds. A nil notFound keeps
// gorm.ErrRecordNotFound as an infrastructure failure.
func translate(op string, err error, notFound, exists func() *errs.Error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound()
	case errors.Is(err, gorm.ErrDuplicatedKey):
		if exists != nil {
			return exists()
		}
		return errs.AlreadyExists("already_exists", "record already exists")
	default:
		return errs.Infra(op, err)
	}
}

func ErrRecipeNotFound() *errs.Error {
	return errs.NotFound(errs.CodeRecipeNotFound, "recipe not found")
}

func ErrUserNotFound() *errs.Error {
	return errs.NotFound(errs.CodeUserNotFound, "user not found")
}

func ErrIngredientNotFound() *errs.Error {
	return errs.NotFound(errs.CodeIngredientNotFound, "ingredient not found")
}

func ErrTagNotFound() *errs.Error {
	return errs.NotFound(errs.CodeTagNotFound, "tag not found")
}

func ErrSubscriptionExists() *errs.Error {
	return errs.AlreadyExists(errs.CodeSubscriptionExists, "you are already subscribed to this user")
}

func ErrSubscriptionNotFound() *errs.Error {
	return errs.NotFound(errs.CodeSubscriptionNotFound, "you are not subscribed to this user")
}

// ErrRelationExists names the relation kind in its code.
func ErrRelationExists(kind models.RelationKind) *errs.Error {
	if kind == models.RelationShoppingCart {
		return errs.AlreadyExists(errs.CodeShoppingCartExists, "recipe is already in the shopping cart")
	}
	return errs.AlreadyExists(errs.CodeFavoriteExists, "recipe is already in favorites")
}

func ErrRelationNotFound(kind models.RelationKind) *errs.Error {
	if kind == models.RelationShoppingCart {
		return errs.NotFound(errs.CodeShoppingCartNotFound, "recipe is not in the shopping cart")
	}
	return errs.NotFound(errs.CodeFavoriteNotFound, "recipe is not in favorites")
}
