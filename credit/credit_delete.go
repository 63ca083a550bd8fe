package credit

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (c *creditServiceImpl) CreditDelete(ctx context.Context, identity authorization.Identity, id string) error {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Delete)).
		Err()
	if err != nil {
		return err
	}

	db := c.db.WithContext(ctx)
	return ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		var old ledger_model.Credit
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&old, "id = ?", id).
			Error
		if err != nil {
			return ledger_core.NotFound(err, "credit", id)
		}

		err = balmng.
			Record(ledger_core.OpDelete, ledger_model.CreditKind, old.ID, identity.IdentityID()).
			Revert(ledger_core.CreditEffects(&old)).
			Err()
		if err != nil {
			return err
		}

		return tx.Delete(&ledger_model.Credit{}, "id = ?", old.ID).Error
	})
}
