package credit

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/pdcgo/site_ledger_service/report"
)

func (c *creditServiceImpl) CreditList(
	ctx context.Context,
	identity authorization.Identity,
	filter *report.Filter,
) ([]*ledger_model.Credit, error) {
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

	hasil := []*ledger_model.Credit{}
	query := c.
		db.
		WithContext(ctx).
		Model(&ledger_model.Credit{}).
		Preload("Site").
		Preload("BankAccount")

	err = filter.
		CreditQuery(query).
		Order("credits.date desc, credits.created_at desc").
		Find(&hasil).
		Error

	return hasil, err
}
