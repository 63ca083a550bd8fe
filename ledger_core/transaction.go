package ledger_core

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("github.com/pdcgo/site_ledger_service/ledger_core")

// OpenTransaction runs handle as one atomic unit of work. The effects
// registered on balmng are applied right before commit. Any error from
// the handler or from a balance update rolls everything back.
func OpenTransaction(ctx context.Context, db *gorm.DB, handle func(tx *gorm.DB, balmng BalanceManage) error) error {
	var err error
	var info *CommitInfo

	ctx, span := tracer.Start(ctx, "ledger.OpenTransaction")
	defer span.End()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balmng := balanceManageImpl{
			tx: tx,
		}

		err := handle(tx, &balmng)
		if err != nil {
			return err
		}

		info, err = balmng.commit()
		return err
	})

	if err != nil {
		if errors.Is(err, ErrSkipTransaction) {
			return nil
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.String("ledger.operation", string(info.Operation)),
		attribute.String("ledger.record_kind", string(info.Kind)),
		attribute.String("ledger.record_id", info.RecordID),
		attribute.Int("ledger.effects", len(info.Effects)),
	)

	runCustomHandler(ctx, info)
	return nil
}
