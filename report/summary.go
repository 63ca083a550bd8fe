package report

import (
	"sort"
	"time"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionNone Direction = ""
	DirectionIn   Direction = "in"
	DirectionOut  Direction = "out"
)

const (
	UnassignedSiteName = "Unassigned"
	CashAccountName    = "Cash"
)

// TransferEntry is a transfer seen from the filtered account.
type TransferEntry struct {
	*ledger_model.FundTransfer
	Direction Direction `json:"direction,omitempty"`
}

// Row is one ledger record in the merged timeline. Exactly one of
// Expense, Credit and Transfer is set, matching Kind.
type Row struct {
	Kind      ledger_model.RecordKind    `json:"kind"`
	Date      ledger_model.Date          `json:"date"`
	Amount    decimal.Decimal            `json:"amount"`
	Direction Direction                  `json:"direction,omitempty"`
	Expense   *ledger_model.Expense      `json:"expense,omitempty"`
	Credit    *ledger_model.Credit       `json:"credit,omitempty"`
	Transfer  *ledger_model.FundTransfer `json:"transfer,omitempty"`
}

func (r *Row) id() string {
	switch r.Kind {
	case ledger_model.ExpenseKind:
		return r.Expense.ID
	case ledger_model.CreditKind:
		return r.Credit.ID
	default:
		return r.Transfer.ID
	}
}

func (r *Row) createdAt() time.Time {
	switch r.Kind {
	case ledger_model.ExpenseKind:
		return r.Expense.CreatedAt
	case ledger_model.CreditKind:
		return r.Credit.CreatedAt
	default:
		return r.Transfer.CreatedAt
	}
}

type Totals struct {
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalCredits  decimal.Decimal `json:"total_credits"`
	TransferIn    decimal.Decimal `json:"transfer_in"`
	TransferOut   decimal.Decimal `json:"transfer_out"`
	Net           decimal.Decimal `json:"net"`
}

// SiteSummary with an empty SiteID is the unassigned bucket.
type SiteSummary struct {
	SiteID   string          `json:"site_id"`
	SiteName string          `json:"site_name"`
	Received decimal.Decimal `json:"received"`
	Expense  decimal.Decimal `json:"expense"`
	Balance  decimal.Decimal `json:"balance"`
}

// AccountSummary with an empty AccountID is the cash pseudo account.
type AccountSummary struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	BankName    string          `json:"bank_name"`
	Credit      decimal.Decimal `json:"credit"`
	Expense     decimal.Decimal `json:"expense"`
	TransferIn  decimal.Decimal `json:"transfer_in"`
	TransferOut decimal.Decimal `json:"transfer_out"`
	Balance     decimal.Decimal `json:"balance"`
}

type SummaryResult struct {
	Expenses       []*ledger_model.Expense `json:"expenses"`
	Credits        []*ledger_model.Credit  `json:"credits"`
	Transfers      []*TransferEntry        `json:"transfers"`
	Rows           []*Row                  `json:"rows"`
	Totals         Totals                  `json:"totals"`
	SiteSummary    []*SiteSummary          `json:"site_summary"`
	AccountSummary []*AccountSummary       `json:"account_summary"`
}

// Dataset is everything one summary is computed from.
type Dataset struct {
	Expenses  []*ledger_model.Expense
	Credits   []*ledger_model.Credit
	Transfers []*ledger_model.FundTransfer
	Sites     []*ledger_model.Site
	Accounts  []*ledger_model.BankAccount
}

// Aggregate builds the summary for data already narrowed by filter.
func Aggregate(filter *Filter, data *Dataset) *SummaryResult {
	result := SummaryResult{
		Expenses: data.Expenses,
		Credits:  data.Credits,
	}

	result.Transfers = Annotate(filter, data.Transfers)
	result.Rows = mergeRows(&result)
	result.Totals = totals(filter, &result)
	result.SiteSummary = siteSummary(data)
	result.AccountSummary = accountSummary(data)

	return &result
}

// Annotate tags each transfer with its direction relative to the
// filtered account.
func Annotate(filter *Filter, transfers []*ledger_model.FundTransfer) []*TransferEntry {
	hasil := make([]*TransferEntry, 0, len(transfers))
	for _, tf := range transfers {
		hasil = append(hasil, &TransferEntry{
			FundTransfer: tf,
			Direction:    directionOf(filter, tf),
		})
	}
	return hasil
}

func directionOf(filter *Filter, tf *ledger_model.FundTransfer) Direction {
	if !filter.HasAccount() {
		return DirectionNone
	}

	switch filter.BankAccountID {
	case tf.ToAccountID:
		return DirectionIn
	case tf.FromAccountID:
		return DirectionOut
	}

	return DirectionNone
}

func mergeRows(result *SummaryResult) []*Row {
	rows := make([]*Row, 0, len(result.Expenses)+len(result.Credits)+len(result.Transfers))

	for _, exp := range result.Expenses {
		rows = append(rows, &Row{
			Kind:    ledger_model.ExpenseKind,
			Date:    exp.Date,
			Amount:  exp.Amount,
			Expense: exp,
		})
	}

	for _, cred := range result.Credits {
		rows = append(rows, &Row{
			Kind:   ledger_model.CreditKind,
			Date:   cred.Date,
			Amount: cred.Amount,
			Credit: cred,
		})
	}

	for _, tf := range result.Transfers {
		rows = append(rows, &Row{
			Kind:      ledger_model.TransferKind,
			Date:      tf.Date,
			Amount:    tf.Amount,
			Direction: tf.Direction,
			Transfer:  tf.FundTransfer,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.Date.Equal(b.Date.Time) {
			return a.Date.After(b.Date.Time)
		}

		ac, bc := a.createdAt(), b.createdAt()
		if !ac.Equal(bc) {
			return ac.After(bc)
		}

		return a.id() < b.id()
	})

	return rows
}

func totals(filter *Filter, result *SummaryResult) Totals {
	tot := Totals{
		TotalExpenses: decimal.Zero,
		TotalCredits:  decimal.Zero,
		TransferIn:    decimal.Zero,
		TransferOut:   decimal.Zero,
	}

	for _, exp := range result.Expenses {
		tot.TotalExpenses = tot.TotalExpenses.Add(exp.Amount)
	}

	for _, cred := range result.Credits {
		tot.TotalCredits = tot.TotalCredits.Add(cred.Amount)
	}

	// without an account filter transfers are internal moves and net out
	if filter.HasAccount() {
		for _, tf := range result.Transfers {
			switch tf.Direction {
			case DirectionIn:
				tot.TransferIn = tot.TransferIn.Add(tf.Amount)
			case DirectionOut:
				tot.TransferOut = tot.TransferOut.Add(tf.Amount)
			}
		}

		tot.TotalExpenses = tot.TotalExpenses.Add(tot.TransferOut)
		tot.TotalCredits = tot.TotalCredits.Add(tot.TransferIn)
	}

	tot.Net = tot.TotalCredits.Sub(tot.TotalExpenses)
	return tot
}

func siteSummary(data *Dataset) []*SiteSummary {
	hasil := make([]*SiteSummary, 0, len(data.Sites)+1)
	bySite := map[string]*SiteSummary{}

	for _, site := range data.Sites {
		item := &SiteSummary{
			SiteID:   site.ID,
			SiteName: site.SiteName,
			Received: decimal.Zero,
			Expense:  decimal.Zero,
		}
		bySite[site.ID] = item
		hasil = append(hasil, item)
	}

	unassigned := &SiteSummary{
		SiteName: UnassignedSiteName,
		Received: decimal.Zero,
		Expense:  decimal.Zero,
	}

	for _, cred := range data.Credits {
		item := unassigned
		if cred.SiteID != nil && bySite[*cred.SiteID] != nil {
			item = bySite[*cred.SiteID]
		}
		item.Received = item.Received.Add(cred.Amount)
	}

	for _, exp := range data.Expenses {
		item := bySite[exp.SiteID]
		if item == nil {
			item = unassigned
		}
		item.Expense = item.Expense.Add(exp.Amount)
	}

	if !unassigned.Received.IsZero() || !unassigned.Expense.IsZero() {
		hasil = append(hasil, unassigned)
	}

	for _, item := range hasil {
		item.Balance = item.Received.Sub(item.Expense)
	}

	return hasil
}

func accountSummary(data *Dataset) []*AccountSummary {
	hasil := make([]*AccountSummary, 0, len(data.Accounts)+1)
	byAccount := map[string]*AccountSummary{}

	newItem := func(id, name, bank string) *AccountSummary {
		return &AccountSummary{
			AccountID:   id,
			AccountName: name,
			BankName:    bank,
			Credit:      decimal.Zero,
			Expense:     decimal.Zero,
			TransferIn:  decimal.Zero,
			TransferOut: decimal.Zero,
		}
	}

	for _, acc := range data.Accounts {
		item := newItem(acc.ID, acc.AccountName, acc.BankName)
		byAccount[acc.ID] = item
		hasil = append(hasil, item)
	}

	cash := newItem("", CashAccountName, "")
	hasil = append(hasil, cash)

	for _, cred := range data.Credits {
		if cred.PaymentMethod == ledger_model.MethodCash {
			cash.Credit = cash.Credit.Add(cred.Amount)
			continue
		}
		if cred.BankAccountID != nil && byAccount[*cred.BankAccountID] != nil {
			item := byAccount[*cred.BankAccountID]
			item.Credit = item.Credit.Add(cred.Amount)
		}
	}

	for _, exp := range data.Expenses {
		if exp.PaymentMethod == ledger_model.MethodCash {
			cash.Expense = cash.Expense.Add(exp.Amount)
			continue
		}
		if exp.BankAccountID != nil && byAccount[*exp.BankAccountID] != nil {
			item := byAccount[*exp.BankAccountID]
			item.Expense = item.Expense.Add(exp.Amount)
		}
	}

	for _, tf := range data.Transfers {
		if item := byAccount[tf.FromAccountID]; item != nil {
			item.TransferOut = item.TransferOut.Add(tf.Amount)
		}
		if item := byAccount[tf.ToAccountID]; item != nil {
			item.TransferIn = item.TransferIn.Add(tf.Amount)
		}
	}

	for _, item := range hasil {
		item.Balance = item.Credit.Add(item.TransferIn).Sub(item.Expense).Sub(item.TransferOut)
	}

	return hasil
}
