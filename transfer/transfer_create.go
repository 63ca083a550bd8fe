package transfer

import (
	"context"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (t *transferServiceImpl) TransferCreate(
	ctx context.Context,
	identity authorization.Identity,
	pay *TransferPayload,
) (*ledger_model.FundTransfer, error) {
	var err error

	err = authorization.
		NewAuthIdentity(identity).
		HasPermission(permission(authorization.Create)).
		Err()
	if err != nil {
		return nil, err
	}

	tf := pay.toTransfer()
	tf.CreatedBy = identity.IdentityID()

	err = ledger_core.ValidateTransfer(&tf)
	if err != nil {
		return nil, err
	}

	db := t.db.WithContext(ctx)
	err = ledger_core.OpenTransaction(ctx, db, func(tx *gorm.DB, balmng ledger_core.BalanceManage) error {
		err := ledger_core.
			NewReferenceCheck(tx).
			Account(&tf.FromAccountID).
			Account(&tf.ToAccountID).
			Err()
		if err != nil {
			return err
		}

		err = tx.Omit(clause.Associations).Create(&tf).Error
		if err != nil {
			return err
		}

		return balmng.
			Record(ledger_core.OpCreate, ledger_model.TransferKind, tf.ID, tf.CreatedBy).
			Apply(ledger_core.TransferEffects(&tf)).
			Err()
	})

	if err != nil {
		return nil, err
	}

	return &tf, nil
}
