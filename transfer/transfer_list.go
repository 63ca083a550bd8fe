package transfer

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/pdcgo/site_ledger_service/report"
)

func (t *transferServiceImpl) TransferList(
	ctx context.Context,
	identity authorization.Identity,
	filter *report.Filter,
) ([]*report.TransferEntry, error) {
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

	transfers := []*ledger_model.FundTransfer{}
	query := t.
		db.
		WithContext(ctx).
		Model(&ledger_model.FundTransfer{}).
		Preload("FromAccount").
		Preload("ToAccount")

	err = filter.
		TransferQuery(query).
		Order("fund_transfers.date desc, fund_transfers.created_at desc").
		Find(&transfers).
		Error
	if err != nil {
		return nil, err
	}

	return report.Annotate(filter, transfers), nil
}
