package gateway

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/bank_account"
	"github.com/pdcgo/site_ledger_service/credit"
	"github.com/pdcgo/site_ledger_service/expense"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/pdcgo/site_ledger_service/report"
	"github.com/pdcgo/site_ledger_service/transfer"
)

type ExpenseService interface {
	ExpenseCreate(ctx context.Context, identity authorization.Identity, pay *expense.ExpensePayload) (*ledger_model.Expense, error)
	ExpenseUpdate(ctx context.Context, identity authorization.Identity, id string, pay *expense.ExpensePayload) (*ledger_model.Expense, error)
	ExpenseDelete(ctx context.Context, identity authorization.Identity, id string) error
	ExpenseList(ctx context.Context, identity authorization.Identity, filter *report.Filter) ([]*ledger_model.Expense, error)
}

type CreditService interface {
	CreditCreate(ctx context.Context, identity authorization.Identity, pay *credit.CreditPayload) (*ledger_model.Credit, error)
	CreditUpdate(ctx context.Context, identity authorization.Identity, id string, pay *credit.CreditPayload) (*ledger_model.Credit, error)
	CreditDelete(ctx context.Context, identity authorization.Identity, id string) error
	CreditList(ctx context.Context, identity authorization.Identity, filter *report.Filter) ([]*ledger_model.Credit, error)
}

type TransferService interface {
	TransferCreate(ctx context.Context, identity authorization.Identity, pay *transfer.TransferPayload) (*ledger_model.FundTransfer, error)
	TransferDelete(ctx context.Context, identity authorization.Identity, id string) error
	TransferList(ctx context.Context, identity authorization.Identity, filter *report.Filter) ([]*report.TransferEntry, error)
}

type ReportService interface {
	Summary(ctx context.Context, identity authorization.Identity, filter *report.Filter) (*report.SummaryResult, error)
	Dashboard(ctx context.Context, identity authorization.Identity, today ledger_model.Date) (*report.DashboardResult, error)
}

type AccountService interface {
	AccountList(ctx context.Context, identity authorization.Identity) ([]*ledger_model.BankAccount, error)
	AccountReconcile(ctx context.Context, identity authorization.Identity, id string) (*bank_account.ReconcileResult, error)
}
