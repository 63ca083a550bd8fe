package ledger_core

import (
	"fmt"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"gorm.io/gorm"
)

// ReferenceCheck verifies that referenced master data exists inside the
// running transaction.
type ReferenceCheck interface {
	Site(id string) ReferenceCheck
	Vendor(id string) ReferenceCheck
	Category(id string) ReferenceCheck
	Account(id *string) ReferenceCheck
	Err() error
}

type referenceCheckImpl struct {
	tx  *gorm.DB
	err error
}

func NewReferenceCheck(tx *gorm.DB) ReferenceCheck {
	return &referenceCheckImpl{
		tx: tx,
	}
}

// Site implements ReferenceCheck.
func (r *referenceCheckImpl) Site(id string) ReferenceCheck {
	return r.exist(&ledger_model.Site{}, "site", id, ErrReferenceNotFound)
}

// Vendor implements ReferenceCheck.
func (r *referenceCheckImpl) Vendor(id string) ReferenceCheck {
	return r.exist(&ledger_model.Vendor{}, "vendor", id, ErrReferenceNotFound)
}

// Category implements ReferenceCheck.
func (r *referenceCheckImpl) Category(id string) ReferenceCheck {
	return r.exist(&ledger_model.Category{}, "category", id, ErrReferenceNotFound)
}

// Account implements ReferenceCheck. A nil id is a cash record.
func (r *referenceCheckImpl) Account(id *string) ReferenceCheck {
	if id == nil {
		return r
	}
	return r.exist(&ledger_model.BankAccount{}, "bank account", *id, ErrAccountNotFound)
}

// Err implements ReferenceCheck.
func (r *referenceCheckImpl) Err() error {
	return r.err
}

func (r *referenceCheckImpl) exist(model any, name string, id string, notFound error) *referenceCheckImpl {
	if r.err != nil {
		return r
	}

	var count int64
	err := r.tx.Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		r.err = err
		return r
	}

	if count == 0 {
		r.err = fmt.Errorf("%w: %s %s", notFound, name, id)
	}

	return r
}
