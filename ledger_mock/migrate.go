package ledger_mock

import (
	"testing"

	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/zeebo/assert"
	"gorm.io/gorm"
)

func MigrateLedger(db *gorm.DB) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		err := db.AutoMigrate(ledger_model.Models()...)
		assert.Nil(t, err)

		return nil
	}
}
