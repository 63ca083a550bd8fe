//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/pdcgo/site_ledger_service"
)

func InitializeMigration() (*Migration, error) {
	wire.Build(
		NewConfig,
		NewDatabase,
		site_ledger_service.NewMigrationHandler,
		NewMigration,
	)

	return &Migration{}, nil
}
