package ledger_model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FundTransfer struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FromAccountID string          `json:"from_account_id" gorm:"type:varchar(36);index;not null"`
	ToAccountID   string          `json:"to_account_id" gorm:"type:varchar(36);index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Date          Date            `json:"date" gorm:"index;not null"`
	Description   string          `json:"description"`
	CreatedBy     string          `json:"created_by" gorm:"type:varchar(64)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	FromAccount *BankAccount `json:"from_account,omitempty" gorm:"foreignKey:FromAccountID"`
	ToAccount   *BankAccount `json:"to_account,omitempty" gorm:"foreignKey:ToAccountID"`
}

func (f *FundTransfer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// GetEntityID implements authorization.Entity.
func (f *FundTransfer) GetEntityID() string {
	return "ledger/fund_transfer"
}
