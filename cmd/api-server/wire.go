//go:build wireinject
// +build wireinject

package main

import (
	"NoteManager/config"
	"NoteManager/dao"
	"NoteManager/handler"
	"NoteManager/pkg/client"
	"NoteManager/pkg/database"
	"NoteManager/pkg/server"
	"NoteManager/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Home), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
