package credit

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (c *creditServiceImpl) CreditUpdate(
	ctx context.Context,
	identity authorization.Identity,
	id string,
	pay *CreditPayload,
) (*ledger_model.Credit, error) {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Update)).
		Err()
	if err != nil {
		return nil, err
	}

	cred := pay.toCredit()
	err = ledger_core.ValidateCredit(&cred)
	if err != nil {
		return nil, err
	}

	db := c.db.WithContext(ctx)
	err = ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		var old ledger_model.Credit
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&old, "id = ?", id).
			Error
		if err != nil {
			return ledger_core.NotFound(err, "credit", id)
		}

		err = resolveSite(tx, &cred)
		if err != nil {
			return err
		}

		err = ledger_core.NewReferenceCheck(tx).Account(cred.BankAccountID).Err()
		if err != nil {
			return err
		}

		cred.ID = old.ID
		cred.CreatedBy = old.CreatedBy
		cred.CreatedAt = old.CreatedAt

		err = tx.Omit(clause.Associations).Save(&cred).Error
		if err != nil {
			return err
		}

		return balmng.
			Record(ledger_core.OpUpdate, ledger_model.CreditKind, cred.ID, identity.IdentityID()).
			Revert(ledger_core.CreditEffects(&old)).
			Apply(ledger_core.CreditEffects(&cred)).
			Err()
	})

	if err != nil {
		return nil, err
	}

	return &cred, nil
}
