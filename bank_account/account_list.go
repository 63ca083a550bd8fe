package bank_account

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
)

func (a *accountServiceImpl) AccountList(ctx context.Context, identity authorization.Identity) ([]*ledger_model.BankAccount, error) {
	err := authorization.NewAuthIdentity(identity).HasPermission(readPermission()).Err()
	if err != nil {
		return nil, err
	}

	hasil := []*ledger_model.BankAccount{}
	err = a.
		db.
		WithContext(ctx).
		Model(&ledger_model.BankAccount{}).
		Order("account_name asc").
		Find(&hasil).
		Error

	return hasil, err
}

func (a *accountServiceImpl) AccountGet(ctx context.Context, identity authorization.Identity, id string) (*ledger_model.BankAccount, error) {
	err := authorization.NewAuthIdentity(identity).HasPermission(readPermission()).Err()
	if err != nil {
		return nil, err
	}

	var acc ledger_model.BankAccount
	err = a.
		db.
		WithContext(ctx).
		Model(&ledger_model.BankAccount{}).
		First(&acc, "id = ?", id).
		Error
	if err != nil {
		return nil, ledger_core.NotFound(err, "bank account", id)
	}

	return &acc, nil
}
