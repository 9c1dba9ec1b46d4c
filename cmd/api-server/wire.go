//go:build wireinject
// +build wireinject

package main

import (
	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/handler"
	"EcoBin/pkg/database"
	"EcoBin/pkg/server"
	"EcoBin/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		server.NewGinEngine,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Bin), "*"),
		wire.Struct(new(handler.Disposal), "*"),
		wire.Struct(new(handler.Reward), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
