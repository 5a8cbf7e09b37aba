package server

import (
	"Foodgram/handler"
)

type Handlers struct {
	Ingredient *handler.Ingredient
	Tag        *handler.Tag
	Recipe     *handler.Recipe
	User       *handler.User
}
