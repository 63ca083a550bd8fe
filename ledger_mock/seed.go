package ledger_mock

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"github.com/zeebo/assert"
	"gorm.io/gorm"
)

// PopulateAccount creates acc with its balance set to the initial balance.
func PopulateAccount(db *gorm.DB, acc *ledger_model.BankAccount) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		if acc.AccountNumber == "" {
			acc.AccountNumber = uuid.NewString()
		}
		if acc.AccountName == "" {
			acc.AccountName = "account " + acc.AccountNumber
		}
		acc.Balance = acc.InitialBalance

		err := db.Create(acc).Error
		assert.Nil(t, err)

		return nil
	}
}

// Master is one site, vendor and category reference set.
type Master struct {
	Site     ledger_model.Site
	Vendor   ledger_model.Vendor
	Category ledger_model.Category
}

func PopulateMaster(db *gorm.DB, master *Master) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		if master.Site.SiteName == "" {
			master.Site.SiteName = "site " + uuid.NewString()[:8]
		}
		if master.Vendor.Name == "" {
			master.Vendor.Name = "vendor " + uuid.NewString()[:8]
		}
		if master.Category.CategoryName == "" {
			master.Category.CategoryName = "category " + uuid.NewString()[:8]
		}

		err := db.Create(&master.Site).Error
		assert.Nil(t, err)
		err = db.Create(&master.Vendor).Error
		assert.Nil(t, err)
		err = db.Create(&master.Category).Error
		assert.Nil(t, err)

		return nil
	}
}

// AssertBalance compares the stored balance of accID with want.
func AssertBalance(t *testing.T, db *gorm.DB, accID string, want int64) {
	t.Helper()

	var acc ledger_model.BankAccount
	err := db.Model(&ledger_model.BankAccount{}).Where("id = ?", accID).First(&acc).Error
	assert.Nil(t, err)

	if !acc.Balance.Equal(decimal.NewFromInt(want)) {
		t.Errorf("balance account %s: got %s want %d", accID, acc.Balance.String(), want)
	}
}

// FailBalanceUpdate makes every update on bank_accounts fail until the
// returned func is called.
func FailBalanceUpdate(db *gorm.DB) func() {
	name := fmt.Sprintf("ledger_mock:fail_balance:%s", uuid.NewString())
	err := db.Callback().Update().Before("gorm:update").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == "bank_accounts" {
			_ = tx.AddError(fmt.Errorf("injected balance failure"))
		}
	})
	if err != nil {
		panic(err)
	}

	return func() {
		_ = db.Callback().Update().Remove(name)
	}
}
