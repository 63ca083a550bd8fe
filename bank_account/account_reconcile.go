package bank_account

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
)

type ReconcileResult struct {
	AccountID      string          `json:"account_id"`
	AccountName    string          `json:"account_name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Credits        decimal.Decimal `json:"credits"`
	Expenses       decimal.Decimal `json:"expenses"`
	TransferIn     decimal.Decimal `json:"transfer_in"`
	TransferOut    decimal.Decimal `json:"transfer_out"`
	Expected       decimal.Decimal `json:"expected"`
	Actual         decimal.Decimal `json:"actual"`
	Drift          decimal.Decimal `json:"drift"`
	Consistent     bool            `json:"consistent"`
}

// AccountReconcile recomputes the balance of one account from its initial
// balance and every live ledger record, and compares it with the stored one.
func (a *accountServiceImpl) AccountReconcile(ctx context.Context, identity authorization.Identity, id string) (*ReconcileResult, error) {
	acc, err := a.AccountGet(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	db := a.db.WithContext(ctx)

	expenses := []*ledger_model.Expense{}
	err = db.
		Model(&ledger_model.Expense{}).
		Where("bank_account_id = ?", id).
		Find(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	credits := []*ledger_model.Credit{}
	err = db.
		Model(&ledger_model.Credit{}).
		Where("bank_account_id = ?", id).
		Find(&credits).
		Error
	if err != nil {
		return nil, err
	}

	transfers := []*ledger_model.FundTransfer{}
	err = db.
		Model(&ledger_model.FundTransfer{}).
		Where("from_account_id = ? OR to_account_id = ?", id, id).
		Find(&transfers).
		Error
	if err != nil {
		return nil, err
	}

	result := ReconcileResult{
		AccountID:      acc.ID,
		AccountName:    acc.AccountName,
		InitialBalance: acc.InitialBalance,
		Credits:        decimal.Zero,
		Expenses:       decimal.Zero,
		TransferIn:     decimal.Zero,
		TransferOut:    decimal.Zero,
		Actual:         acc.Balance,
	}

	for _, exp := range expenses {
		result.Expenses = result.Expenses.Sub(ledger_core.ExpenseEffects(exp).For(id))
	}

	for _, cred := range credits {
		result.Credits = result.Credits.Add(ledger_core.CreditEffects(cred).For(id))
	}

	for _, tf := range transfers {
		delta := ledger_core.TransferEffects(tf).For(id)
		if delta.IsNegative() {
			result.TransferOut = result.TransferOut.Sub(delta)
		} else {
			result.TransferIn = result.TransferIn.Add(delta)
		}
	}

	result.Expected = result.InitialBalance.
		Add(result.Credits).
		Add(result.TransferIn).
		Sub(result.Expenses).
		Sub(result.TransferOut)
	result.Drift = result.Actual.Sub(result.Expected)
	result.Consistent = result.Drift.IsZero()

	return &result, nil
}
