package main

import (
	"log"

	"github.com/pdcgo/site_ledger_service"
	"github.com/pdcgo/site_ledger_service/app_logging"
	"github.com/pdcgo/site_ledger_service/configs"
	"github.com/pdcgo/site_ledger_service/db_connect"
	"gorm.io/gorm"
)

// NewConfig skips JWT validation, migrations never serve requests.
func NewConfig() *configs.AppConfig {
	return configs.Load()
}

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return db_connect.NewDatabase("site_ledger_migration", &cfg.Database)
}

type Migration struct {
	Run func() error
}

func NewMigration(
	migrate site_ledger_service.MigrationHandler,
) *Migration {
	return &Migration{
		Run: func() error {
			err := migrate()
			if err != nil {
				return err
			}

			log.Println("migration done")
			return nil
		},
	}
}

func main() {
	cfg := configs.Load()
	app_logging.SetDefault(cfg.LogLevel, cfg.LogFormat)

	mig, err := InitializeMigration()
	if err != nil {
		panic(err)
	}

	err = mig.Run()
	if err != nil {
		panic(err)
	}
}
