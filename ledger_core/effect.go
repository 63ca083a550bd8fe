package ledger_core

import (
	"sort"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
)

// Effect is a signed change to one bank account balance.
type Effect struct {
	AccountID string          `json:"account_id"`
	Delta     decimal.Decimal `json:"delta"`
}

type EffectList []Effect

func (e EffectList) Inverse() EffectList {
	hasil := make(EffectList, 0, len(e))
	for _, eff := range e {
		hasil = append(hasil, Effect{
			AccountID: eff.AccountID,
			Delta:     eff.Delta.Neg(),
		})
	}
	return hasil
}

// Net merges deltas per account, drops the ones that cancel out and
// orders the rest by account id.
func (e EffectList) Net() EffectList {
	sums := map[string]decimal.Decimal{}
	for _, eff := range e {
		sums[eff.AccountID] = sums[eff.AccountID].Add(eff.Delta)
	}

	hasil := EffectList{}
	for accID, delta := range sums {
		if delta.IsZero() {
			continue
		}
		hasil = append(hasil, Effect{AccountID: accID, Delta: delta})
	}

	sort.Slice(hasil, func(i, j int) bool {
		return hasil[i].AccountID < hasil[j].AccountID
	})

	return hasil
}

// For sums the deltas touching accID.
func (e EffectList) For(accID string) decimal.Decimal {
	total := decimal.Zero
	for _, eff := range e {
		if eff.AccountID == accID {
			total = total.Add(eff.Delta)
		}
	}
	return total
}

// ExpenseEffects debits the paying account only when a bank transfer was
// actually paid. Cash and unpaid or partial expenses do not move money.
func ExpenseEffects(exp *ledger_model.Expense) EffectList {
	if exp.PaymentMethod != ledger_model.MethodBankTransfer {
		return EffectList{}
	}
	if exp.PaymentStatus != ledger_model.PaymentPaid {
		return EffectList{}
	}
	if exp.BankAccountID == nil || *exp.BankAccountID == "" {
		return EffectList{}
	}

	return EffectList{
		{AccountID: *exp.BankAccountID, Delta: exp.Amount.Neg()},
	}
}

func CreditEffects(cred *ledger_model.Credit) EffectList {
	if cred.PaymentMethod != ledger_model.MethodBankTransfer {
		return EffectList{}
	}
	if cred.BankAccountID == nil || *cred.BankAccountID == "" {
		return EffectList{}
	}

	return EffectList{
		{AccountID: *cred.BankAccountID, Delta: cred.Amount},
	}
}

func TransferEffects(tf *ledger_model.FundTransfer) EffectList {
	return EffectList{
		{AccountID: tf.FromAccountID, Delta: tf.Amount.Neg()},
		{AccountID: tf.ToAccountID, Delta: tf.Amount},
	}
}
