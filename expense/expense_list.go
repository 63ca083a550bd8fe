package expense

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/pdcgo/site_ledger_service/report"
)

func (e *expenseServiceImpl) ExpenseList(
	ctx context.Context,
	identity authorization.Identity,
	filter *report.Filter,
) ([]*ledger_model.Expense, error) {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Read)).
		Err()
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = &report.Filter{}
	}

	err = filter.Validate()
	if err != nil {
		return nil, err
	}

	hasil := []*ledger_model.Expense{}
	query := e.
		db.
		WithContext(ctx).
		Model(&ledger_model.Expense{}).
		Preload("Site").
		Preload("Vendor").
		Preload("Category").
		Preload("BankAccount")

	err = filter.
		ExpenseQuery(query).
		Order("expenses.date desc, expenses.created_at desc").
		Find(&hasil).
		Error

	return hasil, err
}
