package ledger_core

import (
	"fmt"
	"time"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// CommitInfo describes one committed unit of work.
type CommitInfo struct {
	Operation  Operation               `json:"operation"`
	Kind       ledger_model.RecordKind `json:"record_kind"`
	RecordID   string                  `json:"record_id"`
	Actor      string                  `json:"actor"`
	Effects    EffectList              `json:"effects"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// BalanceManage collects balance effects during a unit of work. The
// collected effects are written before the transaction commits.
type BalanceManage interface {
	Record(op Operation, kind ledger_model.RecordKind, recordID string, actor string) BalanceManage
	Apply(effects EffectList) BalanceManage
	Revert(effects EffectList) BalanceManage
	Effects() EffectList
	Err() error
}

type balanceManageImpl struct {
	tx      *gorm.DB
	info    CommitInfo
	effects EffectList
	err     error
}

// Record implements BalanceManage.
func (b *balanceManageImpl) Record(op Operation, kind ledger_model.RecordKind, recordID string, actor string) BalanceManage {
	b.info.Operation = op
	b.info.Kind = kind
	b.info.RecordID = recordID
	b.info.Actor = actor
	return b
}

// Apply implements BalanceManage.
func (b *balanceManageImpl) Apply(effects EffectList) BalanceManage {
	for _, eff := range effects {
		if eff.AccountID == "" {
			return b.setErr(fmt.Errorf("%w: empty account id", ErrAccountNotFound))
		}
		b.effects = append(b.effects, eff)
	}
	return b
}

// Revert implements BalanceManage.
func (b *balanceManageImpl) Revert(effects EffectList) BalanceManage {
	return b.Apply(effects.Inverse())
}

// Effects implements BalanceManage.
func (b *balanceManageImpl) Effects() EffectList {
	return b.effects
}

// Err implements BalanceManage.
func (b *balanceManageImpl) Err() error {
	return b.err
}

func (b *balanceManageImpl) setErr(err error) *balanceManageImpl {
	if b.err != nil {
		return b
	}

	if err != nil {
		b.err = err
	}

	return b
}

// commit writes the net delta of every touched account in ascending id
// order, so concurrent units of work lock rows in the same sequence.
func (b *balanceManageImpl) commit() (*CommitInfo, error) {
	if b.err != nil {
		return nil, b.err
	}

	net := b.effects.Net()
	for _, eff := range net {
		res := b.tx.
			Model(&ledger_model.BankAccount{}).
			Where("id = ?", eff.AccountID).
			Update("balance", gorm.Expr("ROUND(balance + ?, 2)", eff.Delta))

		if res.Error != nil {
			return nil, fmt.Errorf("update balance %s: %w", eff.AccountID, res.Error)
		}

		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, eff.AccountID)
		}
	}

	info := b.info
	info.Effects = net
	info.OccurredAt = time.Now()
	return &info, nil
}
