package expense

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (e *expenseServiceImpl) ExpenseCreate(
	ctx context.Context,
	identity authorization.Identity,
	pay *ExpensePayload,
) (*ledger_model.Expense, error) {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Create)).
		Err()
	if err != nil {
		return nil, err
	}

	exp := pay.toExpense()
	exp.CreatedBy = identity.IdentityID()

	err = ledger_core.ValidateExpense(&exp)
	if err != nil {
		return nil, err
	}

	db := e.db.WithContext(ctx)
	err = ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		err := ledger_core.
			NewReferenceCheck(tx).
			Site(exp.SiteID).
			Vendor(exp.VendorID).
			Category(exp.CategoryID).
			Account(exp.BankAccountID).
			Err()
		if err != nil {
			return err
		}

		err = tx.Omit(clause.Associations).Create(&exp).Error
		if err != nil {
			return err
		}

		return balmng.
			Record(ledger_core.OpCreate, ledger_model.ExpenseKind, exp.ID, exp.CreatedBy).
			Apply(ledger_core.ExpenseEffects(&exp)).
			Err()
	})

	if err != nil {
		return nil, err
	}

	return &exp, nil
}
