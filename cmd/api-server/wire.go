//go:build wireinject
// +build wireinject

package main

import (
	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/dao/cache"
	"github.com/iamlouiesison/usefully-fin/handler"
	"github.com/iamlouiesison/usefully-fin/pkg/client"
	"github.com/iamlouiesison/usefully-fin/pkg/database"
	"github.com/iamlouiesison/usefully-fin/pkg/server"
	"github.com/iamlouiesison/usefully-fin/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Asset), "*"),
		wire.Struct(new(handler.Vote), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Stack), "*"),
		wire.Struct(new(handler.Forum), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
