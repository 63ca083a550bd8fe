package ledger_model

// Models lists every table owned or read by the ledger, in migration order.
func Models() []any {
	return []any{
		&Site{},
		&Vendor{},
		&Category{},
		&BankAccount{},
		&Expense{},
		&Credit{},
		&FundTransfer{},
	}
}
