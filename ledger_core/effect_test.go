package ledger_core_test

import (
	"testing"

	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func TestExpenseEffects(t *testing.T) {
	base := ledger_model.Expense{
		Amount:        decimal.NewFromInt(500),
		BankAccountID: ptr("acc-a"),
		PaymentMethod: ledger_model.MethodBankTransfer,
		PaymentStatus: ledger_model.PaymentPaid,
	}

	t.Run("paid bank transfer debits account", func(t *testing.T) {
		exp := base
		effects := ledger_core.ExpenseEffects(&exp)
		assert.Len(t, effects, 1)
		assert.Equal(t, "acc-a", effects[0].AccountID)
		assert.True(t, effects[0].Delta.Equal(decimal.NewFromInt(-500)))
	})

	t.Run("unpaid does not move money", func(t *testing.T) {
		exp := base
		exp.PaymentStatus = ledger_model.PaymentUnpaid
		assert.Empty(t, ledger_core.ExpenseEffects(&exp))

		exp.PaymentStatus = ledger_model.PaymentPartial
		assert.Empty(t, ledger_core.ExpenseEffects(&exp))
	})

	t.Run("cash does not move money", func(t *testing.T) {
		exp := base
		exp.PaymentMethod = ledger_model.MethodCash
		assert.Empty(t, ledger_core.ExpenseEffects(&exp))
	})
}

func TestCreditEffects(t *testing.T) {
	cred := ledger_model.Credit{
		Amount:        decimal.NewFromInt(1000),
		BankAccountID: ptr("acc-a"),
		PaymentMethod: ledger_model.MethodBankTransfer,
	}

	effects := ledger_core.CreditEffects(&cred)
	assert.Len(t, effects, 1)
	assert.True(t, effects.For("acc-a").Equal(decimal.NewFromInt(1000)))

	cred.PaymentMethod = ledger_model.MethodCash
	assert.Empty(t, ledger_core.CreditEffects(&cred))
}

func TestTransferEffectsNet(t *testing.T) {
	tf := ledger_model.FundTransfer{
		FromAccountID: "acc-b",
		ToAccountID:   "acc-a",
		Amount:        decimal.NewFromInt(300),
	}

	effects := ledger_core.TransferEffects(&tf)
	assert.True(t, effects.For("acc-b").Equal(decimal.NewFromInt(-300)))
	assert.True(t, effects.For("acc-a").Equal(decimal.NewFromInt(300)))

	t.Run("net sorted by account", func(t *testing.T) {
		net := effects.Net()
		assert.Len(t, net, 2)
		assert.Equal(t, "acc-a", net[0].AccountID)
		assert.Equal(t, "acc-b", net[1].AccountID)
	})

	t.Run("inverse cancels out", func(t *testing.T) {
		all := append(ledger_core.EffectList{}, effects...)
		all = append(all, effects.Inverse()...)
		assert.Empty(t, all.Net())
	})
}
