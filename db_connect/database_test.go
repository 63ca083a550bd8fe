package db_connect_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pdcgo/site_ledger_service/configs"
	"github.com/pdcgo/site_ledger_service/db_connect"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewDatabase(t *testing.T) {
	t.Run("sqlite file", func(t *testing.T) {
		db, err := db_connect.NewDatabase("test", &configs.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          filepath.Join(t.TempDir(), "ledger.db"),
			MaxOpenConns: 4,
			MaxIdleConns: 1,
		})
		assert.Nil(t, err)

		sqlDB, err := db.DB()
		assert.Nil(t, err)
		defer sqlDB.Close()

		assert.Nil(t, sqlDB.PingContext(context.Background()))
		assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("constraint errors translated", func(t *testing.T) {
		db, err := db_connect.NewDatabase("test", &configs.DatabaseConfig{
			Driver: "sqlite",
			DSN:    filepath.Join(t.TempDir(), "ledger.db"),
		})
		assert.Nil(t, err)

		sqlDB, err := db.DB()
		assert.Nil(t, err)
		defer sqlDB.Close()

		err = db.AutoMigrate(&ledger_model.BankAccount{})
		assert.Nil(t, err)

		first := ledger_model.BankAccount{AccountName: "site float", AccountNumber: "001-77", InitialBalance: decimal.Zero}
		err = db.Create(&first).Error
		assert.Nil(t, err)

		dup := ledger_model.BankAccount{AccountName: "site float copy", AccountNumber: "001-77", InitialBalance: decimal.Zero}
		err = db.Create(&dup).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := db_connect.NewDatabase("test", &configs.DatabaseConfig{Driver: "mongo"})
		assert.NotNil(t, err)
	})
}
