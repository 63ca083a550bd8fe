//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/pdcgo/site_ledger_service"
)

func InitializeApp() (*App, error) {
	wire.Build(
		NewConfig,
		NewDatabase,
		NewAuthorization,
		NewGinEngine,
		site_ledger_service.NewRegister,
		site_ledger_service.NewEventHandler,
		NewApp,
	)

	return &App{}, nil
}
