package expense

import (
	"strings"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpensePayload struct {
	SiteID        string                     `json:"site_id"`
	VendorID      string                     `json:"vendor_id"`
	CategoryID    string                     `json:"category_id"`
	Date          ledger_model.Date          `json:"date"`
	Amount        decimal.Decimal            `json:"amount"`
	Description   string                     `json:"description"`
	PaymentStatus ledger_model.PaymentStatus `json:"payment_status"`
	PaymentMethod ledger_model.PaymentMethod `json:"payment_method"`
	BankAccountID *string                    `json:"bank_account_id"`
}

// toExpense normalizes the payload. Cash expenses never keep an account.
func (p *ExpensePayload) toExpense() ledger_model.Expense {
	exp := ledger_model.Expense{
		SiteID:        strings.TrimSpace(p.SiteID),
		VendorID:      strings.TrimSpace(p.VendorID),
		CategoryID:    strings.TrimSpace(p.CategoryID),
		Date:          p.Date,
		Amount:        p.Amount,
		Description:   p.Description,
		PaymentStatus: p.PaymentStatus,
		PaymentMethod: p.PaymentMethod,
		BankAccountID: ledger_core.TrimID(p.BankAccountID),
	}

	if exp.PaymentMethod == ledger_model.MethodCash {
		exp.BankAccountID = nil
	}

	return exp
}

func permission(actions ...authorization.Action) authorization.CheckPermissionGroup {
	return authorization.CheckPermissionGroup{
		&ledger_model.Expense{}: &authorization.CheckPermission{
			Actions: actions,
		},
	}
}

type expenseServiceImpl struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *expenseServiceImpl {
	return &expenseServiceImpl{
		db: db,
	}
}
