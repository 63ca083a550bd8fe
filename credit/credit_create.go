package credit

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (c *creditServiceImpl) CreditCreate(
	ctx context.Context,
	identity authorization.Identity,
	pay *CreditPayload,
) (*ledger_model.Credit, error) {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Create)).
		Err()
	if err != nil {
		return nil, err
	}

	cred := pay.toCredit()
	cred.CreatedBy = identity.IdentityID()

	err = ledger_core.ValidateCredit(&cred)
	if err != nil {
		return nil, err
	}

	db := c.db.WithContext(ctx)
	err = ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		err := resolveSite(tx, &cred)
		if err != nil {
			return err
		}

		err = ledger_core.NewReferenceCheck(tx).Account(cred.BankAccountID).Err()
		if err != nil {
			return err
		}

		err = tx.Omit(clause.Associations).Create(&cred).Error
		if err != nil {
			return err
		}

		return balmng.
			Record(ledger_core.OpCreate, ledger_model.CreditKind, cred.ID, cred.CreatedBy).
			Apply(ledger_core.CreditEffects(&cred)).
			Err()
	})

	if err != nil {
		return nil, err
	}

	return &cred, nil
}
