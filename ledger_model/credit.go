package ledger_model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Credit struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Date          Date            `json:"date" gorm:"index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"type:varchar(16);not null"`
	BankAccountID *string         `json:"bank_account_id" gorm:"type:varchar(36);index"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	SiteID        *string         `json:"site_id" gorm:"type:varchar(36);index"`
	CreatedBy     string          `json:"created_by" gorm:"type:varchar(64)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Site        *Site        `json:"site,omitempty"`
	BankAccount *BankAccount `json:"bank_account,omitempty"`
}

func (c *Credit) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// GetEntityID implements authorization.Entity.
func (c *Credit) GetEntityID() string {
	return "ledger/credit"
}
