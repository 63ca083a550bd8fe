package ledger_core

import (
	"strings"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimals balances are kept at.
const AmountScale = 2

func validateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return NewValidationError("amount", "must be greater than zero")
	case !amount.Equal(amount.Round(AmountScale)):
		return NewValidationError("amount", "must have at most 2 decimal places")
	}
	return nil
}

func ValidateExpense(exp *ledger_model.Expense) error {
	switch {
	case strings.TrimSpace(exp.SiteID) == "":
		return NewValidationError("site_id", "is required")
	case strings.TrimSpace(exp.VendorID) == "":
		return NewValidationError("vendor_id", "is required")
	case strings.TrimSpace(exp.CategoryID) == "":
		return NewValidationError("category_id", "is required")
	case exp.Date.IsZero():
		return NewValidationError("date", "is required")
	case validateAmount(exp.Amount) != nil:
		return validateAmount(exp.Amount)
	case !exp.PaymentStatus.Valid():
		return NewValidationError("payment_status", "must be one of paid, unpaid, partial")
	case !exp.PaymentMethod.Valid():
		return NewValidationError("payment_method", "must be cash or bank_transfer")
	}

	if exp.PaymentMethod == ledger_model.MethodBankTransfer &&
		exp.PaymentStatus == ledger_model.PaymentPaid &&
		emptyID(exp.BankAccountID) {
		return NewValidationError("bank_account_id", "is required for a paid bank transfer")
	}

	return nil
}

func ValidateCredit(cred *ledger_model.Credit) error {
	switch {
	case cred.Date.IsZero():
		return NewValidationError("date", "is required")
	case validateAmount(cred.Amount) != nil:
		return validateAmount(cred.Amount)
	case !cred.PaymentMethod.Valid():
		return NewValidationError("payment_method", "must be cash or bank_transfer")
	}

	if cred.PaymentMethod == ledger_model.MethodBankTransfer && emptyID(cred.BankAccountID) {
		return NewValidationError("bank_account_id", "is required for a bank transfer")
	}

	return nil
}

func ValidateTransfer(tf *ledger_model.FundTransfer) error {
	switch {
	case strings.TrimSpace(tf.FromAccountID) == "":
		return NewValidationError("from_account_id", "is required")
	case strings.TrimSpace(tf.ToAccountID) == "":
		return NewValidationError("to_account_id", "is required")
	case tf.FromAccountID == tf.ToAccountID:
		return &ValidationError{
			Field:   "to_account_id",
			Message: ErrSameAccount.Error(),
			Err:     ErrSameAccount,
		}
	case validateAmount(tf.Amount) != nil:
		return validateAmount(tf.Amount)
	case tf.Date.IsZero():
		return NewValidationError("date", "is required")
	}

	return nil
}

func emptyID(id *string) bool {
	return id == nil || strings.TrimSpace(*id) == ""
}

// TrimID trims an optional id and turns a blank one into nil.
func TrimID(id *string) *string {
	if emptyID(id) {
		return nil
	}

	trimmed := strings.TrimSpace(*id)
	return &trimmed
}
