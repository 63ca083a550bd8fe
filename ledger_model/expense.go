package ledger_model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SiteID        string          `json:"site_id" gorm:"type:varchar(36);index;not null"`
	VendorID      string          `json:"vendor_id" gorm:"type:varchar(36);index;not null"`
	CategoryID    string          `json:"category_id" gorm:"type:varchar(36);index;not null"`
	Date          Date            `json:"date" gorm:"index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Description   string          `json:"description"`
	PaymentStatus PaymentStatus   `json:"payment_status" gorm:"type:varchar(16);index;not null"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"type:varchar(16);not null"`
	BankAccountID *string         `json:"bank_account_id" gorm:"type:varchar(36);index"`
	CreatedBy     string          `json:"created_by" gorm:"type:varchar(64)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Site        *Site        `json:"site,omitempty"`
	Vendor      *Vendor      `json:"vendor,omitempty"`
	Category    *Category    `json:"category,omitempty"`
	BankAccount *BankAccount `json:"bank_account,omitempty"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// GetEntityID implements authorization.Entity.
func (e *Expense) GetEntityID() string {
	return "ledger/expense"
}
