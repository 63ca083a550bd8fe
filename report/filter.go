package report

import (
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
)

// Filter has one optional field per report dimension. Empty strings and
// nil dates mean the dimension is not filtered.
type Filter struct {
	StartDate     *ledger_model.Date
	EndDate       *ledger_model.Date
	SiteID        string
	VendorID      string
	CategoryID    string
	BankAccountID string
	PaymentStatus ledger_model.PaymentStatus
}

func (f *Filter) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(f.StartDate.Time) {
		return ledger_core.NewValidationError("end_date", "must not be before start_date")
	}

	if f.PaymentStatus != "" && !f.PaymentStatus.Valid() {
		return ledger_core.NewValidationError("payment_status", "must be one of paid, unpaid, partial")
	}

	return nil
}

func (f *Filter) HasAccount() bool {
	return f.BankAccountID != ""
}

func (f *Filter) ExpenseQuery(query *gorm.DB) *gorm.DB {
	if f.SiteID != "" {
		query = query.Where("expenses.site_id = ?", f.SiteID)
	}
	if f.VendorID != "" {
		query = query.Where("expenses.vendor_id = ?", f.VendorID)
	}
	if f.CategoryID != "" {
		query = query.Where("expenses.category_id = ?", f.CategoryID)
	}
	if f.PaymentStatus != "" {
		query = query.Where("expenses.payment_status = ?", f.PaymentStatus)
	}
	if f.BankAccountID != "" {
		query = query.Where("expenses.bank_account_id = ?", f.BankAccountID)
	}

	return f.dateRange(query, "expenses.date")
}

// CreditQuery keeps credits without a site when a site filter is set.
func (f *Filter) CreditQuery(query *gorm.DB) *gorm.DB {
	if f.SiteID != "" {
		query = query.Where("(credits.site_id = ? OR credits.site_id IS NULL)", f.SiteID)
	}
	if f.BankAccountID != "" {
		query = query.Where("credits.bank_account_id = ?", f.BankAccountID)
	}

	return f.dateRange(query, "credits.date")
}

func (f *Filter) TransferQuery(query *gorm.DB) *gorm.DB {
	if f.BankAccountID != "" {
		query = query.Where(
			"(fund_transfers.from_account_id = ? OR fund_transfers.to_account_id = ?)",
			f.BankAccountID,
			f.BankAccountID,
		)
	}

	return f.dateRange(query, "fund_transfers.date")
}

func (f *Filter) dateRange(query *gorm.DB, column string) *gorm.DB {
	if f.StartDate != nil {
		query = query.Where(column+" >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where(column+" <= ?", *f.EndDate)
	}
	return query
}
