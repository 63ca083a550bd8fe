package site_ledger_service

import (
	"log"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
)

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		log.Println("migrating site ledger service")
		return db.AutoMigrate(ledger_model.Models()...)
	}
}
