package ledger_model

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentUnpaid, PaymentPartial:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodBankTransfer:
		return true
	}
	return false
}

// RecordKind tags the ledger record a row or balance effect came from.
type RecordKind string

const (
	ExpenseKind  RecordKind = "expense"
	CreditKind   RecordKind = "credit"
	TransferKind RecordKind = "transfer"
)
