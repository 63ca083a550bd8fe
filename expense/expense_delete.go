package expense

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (e *expenseServiceImpl) ExpenseDelete(ctx context.Context, identity authorization.Identity, id string) error {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Delete)).
		Err()
	if err != nil {
		return err
	}

	db := e.db.WithContext(ctx)
	return ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		var old ledger_model.Expense
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&old, "id = ?", id).
			Error
		if err != nil {
			return ledger_core.NotFound(err, "expense", id)
		}

		err = balmng.
			Record(ledger_core.OpDelete, ledger_model.ExpenseKind, old.ID, identity.IdentityID()).
			Revert(ledger_core.ExpenseEffects(&old)).
			Err()
		if err != nil {
			return err
		}

		return tx.Delete(&ledger_model.Expense{}, "id = ?", old.ID).Error
	})
}
