//go:build wireinject
// +build wireinject

package main

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/handler"
	"Foodgram/pkg/database"
	"Foodgram/pkg/hashid"
	"Foodgram/pkg/render"
	"Foodgram/pkg/server"
	"Foodgram/pkg/storage"
	"Foodgram/service"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	database.NewDB,
	cache.ProviderSet,
	hashid.New,
	render.NewRegistry,
	storage.NewLocalImageStore,
	wire.Bind(new(storage.ImageStore), new(*storage.LocalImageStore)),
	dao.ProviderSet,
	service.ProviderSet,
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		infraSet,
		server.NewGinEngine,
		wire.Struct(new(handler.Ingredient), "*"),
		wire.Struct(new(handler.Tag), "*"),
		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.User), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil, nil
}

func InitTools(cfg *config.Config) (*Tools, func(), error) {
	wire.Build(
		database.NewDB,
		dao.NewTxManager,
		dao.NewUsers,
		dao.NewIngredientDAO,
		dao.NewTagDAO,
		wire.Struct(new(service.IngredientService), "*"),
		wire.Bind(new(service.IIngredientService), new(*service.IngredientService)),
		wire.Struct(new(service.TagService), "*"),
		wire.Bind(new(service.ITagService), new(*service.TagService)),
		wire.Struct(new(Tools), "*"),
	)
	return nil, nil, nil
}
