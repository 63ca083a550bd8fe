package credit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreditPayload struct {
	Date          ledger_model.Date          `json:"date"`
	Amount        decimal.Decimal            `json:"amount"`
	PaymentMethod ledger_model.PaymentMethod `json:"payment_method"`
	BankAccountID *string                    `json:"bank_account_id"`
	Description   string                     `json:"description"`
	Category      string                     `json:"category"`
	SiteID        *string                    `json:"site_id"`
}

func (p *CreditPayload) toCredit() ledger_model.Credit {
	cred := ledger_model.Credit{
		Date:          p.Date,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		BankAccountID: ledger_core.TrimID(p.BankAccountID),
		Description:   p.Description,
		Category:      strings.TrimSpace(p.Category),
		SiteID:        ledger_core.TrimID(p.SiteID),
	}

	if cred.PaymentMethod == ledger_model.MethodCash {
		cred.BankAccountID = nil
	}

	return cred
}

// resolveSite checks the optional site and labels an uncategorized credit
// with the site name.
func resolveSite(tx *gorm.DB, cred *ledger_model.Credit) error {
	if cred.SiteID == nil {
		return nil
	}

	var site ledger_model.Site
	err := tx.Model(&ledger_model.Site{}).First(&site, "id = ?", *cred.SiteID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: site %s", ledger_core.ErrReferenceNotFound, *cred.SiteID)
		}
		return err
	}

	if cred.Category == "" {
		cred.Category = site.SiteName
	}

	return nil
}

func permission(actions ...authorization.Action) authorization.CheckPermissionGroup {
	return authorization.CheckPermissionGroup{
		&ledger_model.Credit{}: &authorization.CheckPermission{
			Actions: actions,
		},
	}
}

type creditServiceImpl struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *creditServiceImpl {
	return &creditServiceImpl{
		db: db,
	}
}
