package report

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("github.com/pdcgo/site_ledger_service/report")

type reportServiceImpl struct {
	db         *gorm.DB
	fetchLimit int
}

func NewReportService(db *gorm.DB) *reportServiceImpl {
	limit := 5
	// sqlite serializes connections, in memory databases live on a single one
	if db.Dialector.Name() == "sqlite" {
		limit = 1
	}

	return &reportServiceImpl{
		db:         db,
		fetchLimit: limit,
	}
}

func readPermission() authorization.CheckPermissionGroup {
	return authorization.CheckPermissionGroup{
		&ledger_model.Expense{}: &authorization.CheckPermission{
			Actions: []authorization.Action{authorization.Read},
		},
		&ledger_model.Credit{}: &authorization.CheckPermission{
			Actions: []authorization.Action{authorization.Read},
		},
		&ledger_model.FundTransfer{}: &authorization.CheckPermission{
			Actions: []authorization.Action{authorization.Read},
		},
	}
}

func (r *reportServiceImpl) Summary(ctx context.Context, identity authorization.Identity, filter *Filter) (*SummaryResult, error) {
	var err error

	err = authorization.NewAuthIdentity(identity).HasPermission(readPermission()).Err()
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = &Filter{}
	}

	err = filter.Validate()
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "report.Summary")
	defer span.End()

	data, err := r.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	return Aggregate(filter, data), nil
}

func (r *reportServiceImpl) fetch(ctx context.Context, filter *Filter) (*Dataset, error) {
	data := Dataset{
		Expenses:  []*ledger_model.Expense{},
		Credits:   []*ledger_model.Credit{},
		Transfers: []*ledger_model.FundTransfer{},
		Sites:     []*ledger_model.Site{},
		Accounts:  []*ledger_model.BankAccount{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.fetchLimit)

	session := func() *gorm.DB {
		return r.db.WithContext(gctx)
	}

	g.Go(func() error {
		query := session().
			Model(&ledger_model.Expense{}).
			Preload("Site").
			Preload("Vendor").
			Preload("Category").
			Preload("BankAccount")

		return filter.
			ExpenseQuery(query).
			Order("expenses.date desc, expenses.created_at desc").
			Find(&data.Expenses).
			Error
	})

	g.Go(func() error {
		query := session().
			Model(&ledger_model.Credit{}).
			Preload("Site").
			Preload("BankAccount")

		return filter.
			CreditQuery(query).
			Order("credits.date desc, credits.created_at desc").
			Find(&data.Credits).
			Error
	})

	g.Go(func() error {
		query := session().
			Model(&ledger_model.FundTransfer{}).
			Preload("FromAccount").
			Preload("ToAccount")

		return filter.
			TransferQuery(query).
			Order("fund_transfers.date desc, fund_transfers.created_at desc").
			Find(&data.Transfers).
			Error
	})

	g.Go(func() error {
		return session().
			Model(&ledger_model.Site{}).
			Order("site_name asc").
			Find(&data.Sites).
			Error
	})

	g.Go(func() error {
		return session().
			Model(&ledger_model.BankAccount{}).
			Order("account_name asc").
			Find(&data.Accounts).
			Error
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return &data, nil
}
