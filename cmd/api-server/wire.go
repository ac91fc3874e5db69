//go:build wireinject
// +build wireinject

package main

import (
	"AppNotas/config"
	"AppNotas/dao"
	"AppNotas/handler"
	"AppNotas/pkg/database"
	"AppNotas/pkg/server"
	"AppNotas/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		config.ProvideOssConfig,
		config.ProvideStorageConfig,
		database.NewDB,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Public), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}
