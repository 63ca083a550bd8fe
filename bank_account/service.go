package bank_account

import (
	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
)

type accountServiceImpl struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *accountServiceImpl {
	return &accountServiceImpl{
		db: db,
	}
}

func readPermission() authorization.CheckPermissionGroup {
	return authorization.CheckPermissionGroup{
		&ledger_model.BankAccount{}: &authorization.CheckPermission{
			Actions: []authorization.Action{authorization.Read},
		},
	}
}
