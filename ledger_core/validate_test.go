package ledger_core_test

import (
	"errors"
	"testing"

	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateExpense(t *testing.T) {
	valid := func() ledger_model.Expense {
		return ledger_model.Expense{
			SiteID:        "site",
			VendorID:      "vendor",
			CategoryID:    "category",
			Date:          ledger_model.NewDate(2025, 1, 3),
			Amount:        decimal.NewFromInt(10),
			PaymentStatus: ledger_model.PaymentPaid,
			PaymentMethod: ledger_model.MethodBankTransfer,
			BankAccountID: ptr("acc"),
		}
	}

	cases := map[string]struct {
		mutate func(exp *ledger_model.Expense)
		field  string
	}{
		"ok":            {func(exp *ledger_model.Expense) {}, ""},
		"no site":       {func(exp *ledger_model.Expense) { exp.SiteID = "" }, "site_id"},
		"no vendor":     {func(exp *ledger_model.Expense) { exp.VendorID = " " }, "vendor_id"},
		"no category":   {func(exp *ledger_model.Expense) { exp.CategoryID = "" }, "category_id"},
		"zero amount":   {func(exp *ledger_model.Expense) { exp.Amount = decimal.Zero }, "amount"},
		"sub cent":      {func(exp *ledger_model.Expense) { exp.Amount = decimal.RequireFromString("10.005") }, "amount"},
		"two decimals":  {func(exp *ledger_model.Expense) { exp.Amount = decimal.RequireFromString("10.25") }, ""},
		"trailing zero": {func(exp *ledger_model.Expense) { exp.Amount = decimal.RequireFromString("10.500") }, ""},
		"bad status":    {func(exp *ledger_model.Expense) { exp.PaymentStatus = "later" }, "payment_status"},
		"bad method":    {func(exp *ledger_model.Expense) { exp.PaymentMethod = "cheque" }, "payment_method"},
		"no date":       {func(exp *ledger_model.Expense) { exp.Date = ledger_model.Date{} }, "date"},
		"paid no acc":   {func(exp *ledger_model.Expense) { exp.BankAccountID = nil }, "bank_account_id"},
		"unpaid no acc": {func(exp *ledger_model.Expense) { exp.BankAccountID = nil; exp.PaymentStatus = ledger_model.PaymentUnpaid }, ""},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			exp := valid()
			c.mutate(&exp)

			err := ledger_core.ValidateExpense(&exp)
			if c.field == "" {
				assert.Nil(t, err)
				return
			}

			var verr *ledger_core.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, c.field, verr.Field)
		})
	}
}

func TestValidateTransferSameAccount(t *testing.T) {
	tf := ledger_model.FundTransfer{
		FromAccountID: "acc",
		ToAccountID:   "acc",
		Amount:        decimal.NewFromInt(1),
		Date:          ledger_model.NewDate(2025, 1, 3),
	}

	err := ledger_core.ValidateTransfer(&tf)
	assert.ErrorIs(t, err, ledger_core.ErrSameAccount)

	var verr *ledger_core.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestValidateCredit(t *testing.T) {
	cred := ledger_model.Credit{
		Date:          ledger_model.NewDate(2025, 1, 3),
		Amount:        decimal.NewFromInt(1),
		PaymentMethod: ledger_model.MethodBankTransfer,
	}

	err := ledger_core.ValidateCredit(&cred)
	assert.NotNil(t, err)

	cred.PaymentMethod = ledger_model.MethodCash
	assert.Nil(t, ledger_core.ValidateCredit(&cred))
}

func TestValidateAmountScale(t *testing.T) {
	amount := decimal.RequireFromString("0.001")

	cred := ledger_model.Credit{
		Date:          ledger_model.NewDate(2025, 1, 3),
		Amount:        amount,
		PaymentMethod: ledger_model.MethodCash,
	}
	tf := ledger_model.FundTransfer{
		FromAccountID: "acc-a",
		ToAccountID:   "acc-b",
		Amount:        amount,
		Date:          ledger_model.NewDate(2025, 1, 3),
	}

	for name, err := range map[string]error{
		"credit":   ledger_core.ValidateCredit(&cred),
		"transfer": ledger_core.ValidateTransfer(&tf),
	} {
		t.Run(name, func(t *testing.T) {
			var verr *ledger_core.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, "amount", verr.Field)
		})
	}
}

func TestTrimID(t *testing.T) {
	assert.Nil(t, ledger_core.TrimID(nil))
	assert.Nil(t, ledger_core.TrimID(ptr("   ")))
	assert.Equal(t, "acc", *ledger_core.TrimID(ptr(" acc ")))
}
