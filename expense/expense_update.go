package expense

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseUpdate reverts the stored balance effect and applies the effect
// of the new values in the same transaction.
func (e *expenseServiceImpl) ExpenseUpdate(
	ctx context.Context,
	identity authorization.Identity,
	id string,
	pay *ExpensePayload,
) (*ledger_model.Expense, error) {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Update)).
		Err()
	if err != nil {
		return nil, err
	}

	exp := pay.toExpense()
	err = ledger_core.ValidateExpense(&exp)
	if err != nil {
		return nil, err
	}

	db := e.db.WithContext(ctx)
	err = ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		var old ledger_model.Expense
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&old, "id = ?", id).
			Error
		if err != nil {
			return ledger_core.NotFound(err, "expense", id)
		}

		err = ledger_core.
			NewReferenceCheck(tx).
			Site(exp.SiteID).
			Vendor(exp.VendorID).
			Category(exp.CategoryID).
			Account(exp.BankAccountID).
			Err()
		if err != nil {
			return err
		}

		exp.ID = old.ID
		exp.CreatedBy = old.CreatedBy
		exp.CreatedAt = old.CreatedAt

		err = tx.Omit(clause.Associations).Save(&exp).Error
		if err != nil {
			return err
		}

		return balmng.
			Record(ledger_core.OpUpdate, ledger_model.ExpenseKind, exp.ID, identity.IdentityID()).
			Revert(ledger_core.ExpenseEffects(&old)).
			Apply(ledger_core.ExpenseEffects(&exp)).
			Err()
	})

	if err != nil {
		return nil, err
	}

	return &exp, nil
}
