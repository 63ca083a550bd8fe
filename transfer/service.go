package transfer

import (
	"strings"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransferPayload struct {
	FromAccountID string            `json:"from_account_id"`
	ToAccountID   string            `json:"to_account_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Date          ledger_model.Date `json:"date"`
	Description   string            `json:"description"`
}

func (p *TransferPayload) toTransfer() ledger_model.FundTransfer {
	return ledger_model.FundTransfer{
		FromAccountID: strings.TrimSpace(p.FromAccountID),
		ToAccountID:   strings.TrimSpace(p.ToAccountID),
		Amount:        p.Amount,
		Date:          p.Date,
		Description:   p.Description,
	}
}

func permission(actions ...authorization.Action) authorization.CheckPermissionGroup {
	return authorization.CheckPermissionGroup{
		&ledger_model.FundTransfer{}: &authorization.CheckPermission{
			Actions: actions,
		},
	}
}

type transferServiceImpl struct {
	db *gorm.DB
}

func NewTransferService(db *gorm.DB) *transferServiceImpl {
	return &transferServiceImpl{
		db: db,
	}
}
