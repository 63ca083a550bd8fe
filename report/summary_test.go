package report_test

import (
	"testing"
	"time"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/pdcgo/site_ledger_service/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestAggregate(t *testing.T) {
	siteA := &ledger_model.Site{ID: "site-a", SiteName: "A"}
	siteB := &ledger_model.Site{ID: "site-b", SiteName: "B"}
	accA := &ledger_model.BankAccount{ID: "acc-a", AccountName: "Main"}
	accB := &ledger_model.BankAccount{ID: "acc-b", AccountName: "Petty"}
	created := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	data := &report.Dataset{
		Sites:    []*ledger_model.Site{siteA, siteB},
		Accounts: []*ledger_model.BankAccount{accA, accB},
		Expenses: []*ledger_model.Expense{
			{ID: "e1", SiteID: "site-a", Date: ledger_model.NewDate(2025, 1, 2), Amount: dec(200), PaymentMethod: ledger_model.MethodBankTransfer, BankAccountID: ptr("acc-a"), CreatedAt: created},
			{ID: "e2", SiteID: "site-b", Date: ledger_model.NewDate(2025, 1, 5), Amount: dec(50), PaymentMethod: ledger_model.MethodCash, CreatedAt: created},
		},
		Credits: []*ledger_model.Credit{
			{ID: "c1", SiteID: ptr("site-a"), Date: ledger_model.NewDate(2025, 1, 3), Amount: dec(500), PaymentMethod: ledger_model.MethodBankTransfer, BankAccountID: ptr("acc-a"), CreatedAt: created},
			{ID: "c2", Date: ledger_model.NewDate(2025, 1, 3), Amount: dec(30), PaymentMethod: ledger_model.MethodCash, CreatedAt: created.Add(time.Hour)},
		},
		Transfers: []*ledger_model.FundTransfer{
			{ID: "t1", FromAccountID: "acc-b", ToAccountID: "acc-a", Date: ledger_model.NewDate(2025, 1, 4), Amount: dec(300), CreatedAt: created},
		},
	}

	t.Run("rows sorted desc with ties", func(t *testing.T) {
		res := report.Aggregate(&report.Filter{}, data)
		assert.Len(t, res.Rows, 5)

		ids := []string{}
		for _, row := range res.Rows {
			switch row.Kind {
			case ledger_model.ExpenseKind:
				ids = append(ids, row.Expense.ID)
			case ledger_model.CreditKind:
				ids = append(ids, row.Credit.ID)
			case ledger_model.TransferKind:
				ids = append(ids, row.Transfer.ID)
			}
		}
		assert.Equal(t, []string{"e2", "t1", "c2", "c1", "e1"}, ids)
	})

	t.Run("unfiltered totals ignore transfers", func(t *testing.T) {
		res := report.Aggregate(&report.Filter{}, data)
		assert.True(t, res.Totals.TotalExpenses.Equal(dec(250)))
		assert.True(t, res.Totals.TotalCredits.Equal(dec(530)))
		assert.True(t, res.Totals.Net.Equal(dec(280)))
		assert.Equal(t, report.DirectionNone, res.Transfers[0].Direction)
	})

	t.Run("site balances add up to net", func(t *testing.T) {
		res := report.Aggregate(&report.Filter{}, data)

		total := decimal.Zero
		for _, item := range res.SiteSummary {
			assert.True(t, item.Balance.Equal(item.Received.Sub(item.Expense)))
			total = total.Add(item.Balance)
		}
		assert.True(t, total.Equal(res.Totals.Net))

		assert.Len(t, res.SiteSummary, 3)
		assert.Equal(t, report.UnassignedSiteName, res.SiteSummary[2].SiteName)
		assert.True(t, res.SiteSummary[0].Balance.Equal(dec(300)))
		assert.True(t, res.SiteSummary[1].Balance.Equal(dec(-50)))
	})

	t.Run("account summary", func(t *testing.T) {
		res := report.Aggregate(&report.Filter{}, data)
		assert.Len(t, res.AccountSummary, 3)

		main := res.AccountSummary[0]
		assert.True(t, main.Credit.Equal(dec(500)))
		assert.True(t, main.Expense.Equal(dec(200)))
		assert.True(t, main.TransferIn.Equal(dec(300)))
		assert.True(t, main.Balance.Equal(dec(600)))

		petty := res.AccountSummary[1]
		assert.True(t, petty.TransferOut.Equal(dec(300)))
		assert.True(t, petty.Balance.Equal(dec(-300)))

		cash := res.AccountSummary[2]
		assert.Equal(t, report.CashAccountName, cash.AccountName)
		assert.True(t, cash.Credit.Equal(dec(30)))
		assert.True(t, cash.Expense.Equal(dec(50)))
	})

	t.Run("account filter counts incoming transfer as credit", func(t *testing.T) {
		filtered := &report.Dataset{
			Sites:     data.Sites,
			Accounts:  data.Accounts,
			Expenses:  data.Expenses[:1],
			Credits:   data.Credits[:1],
			Transfers: data.Transfers,
		}

		res := report.Aggregate(&report.Filter{BankAccountID: "acc-a"}, filtered)
		assert.Equal(t, report.DirectionIn, res.Transfers[0].Direction)
		assert.True(t, res.Totals.TransferIn.Equal(dec(300)))
		assert.True(t, res.Totals.TotalCredits.Equal(dec(800)))
		assert.True(t, res.Totals.TotalExpenses.Equal(dec(200)))

		res = report.Aggregate(&report.Filter{BankAccountID: "acc-b"}, &report.Dataset{Transfers: data.Transfers})
		assert.Equal(t, report.DirectionOut, res.Transfers[0].Direction)
		assert.True(t, res.Totals.TotalExpenses.Equal(dec(300)))
		assert.True(t, res.Totals.TotalCredits.IsZero())
	})
}

func TestFilterValidate(t *testing.T) {
	start := ledger_model.NewDate(2025, 2, 1)
	end := ledger_model.NewDate(2025, 1, 1)

	assert.NotNil(t, (&report.Filter{StartDate: &start, EndDate: &end}).Validate())
	assert.NotNil(t, (&report.Filter{PaymentStatus: "later"}).Validate())
	assert.Nil(t, (&report.Filter{StartDate: &end, EndDate: &start}).Validate())
}
