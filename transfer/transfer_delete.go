package transfer

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransferDelete puts the amount back on the source account and takes it
// off the destination before the transfer row is removed.
func (t *transferServiceImpl) TransferDelete(ctx context.Context, identity authorization.Identity, id string) error {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Delete)).
		Err()
	if err != nil {
		return err
	}

	db := t.db.WithContext(ctx)
	return ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		var old ledger_model.FundTransfer
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&old, "id = ?", id).
			Error
		if err != nil {
			return ledger_core.NotFound(err, "fund transfer", id)
		}

		err = balmng.
			Record(ledger_core.OpDelete, ledger_model.TransferKind, old.ID, identity.IdentityID()).
			Revert(ledger_core.TransferEffects(&old)).
			Err()
		if err != nil {
			return err
		}

		return tx.Delete(&ledger_model.FundTransfer{}, "id = ?", old.ID).Error
	})
}
