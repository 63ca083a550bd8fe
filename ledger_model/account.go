package ledger_model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BankAccount struct {
	ID             string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountName    string          `json:"account_name" gorm:"not null"`
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number" gorm:"unique"`
	IfscCode       string          `json:"ifsc_code"`
	InitialBalance decimal.Decimal `json:"initial_balance" gorm:"type:decimal(20,2);not null;default:0"`
	Balance        decimal.Decimal `json:"balance" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// GetEntityID implements authorization.Entity.
func (b *BankAccount) GetEntityID() string {
	return "ledger/bank_account"
}
