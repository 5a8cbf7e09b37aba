package main

import (
	"Foodgram/dao"
	"Foodgram/service"

	"gorm.io/gorm"
)

// Tools is the dependency set of the maintenance commands.
type Tools struct {
	DB          *gorm.DB
	Users       *dao.Users
	Ingredients service.IIngredientService
	Tags        service.ITagService
}
