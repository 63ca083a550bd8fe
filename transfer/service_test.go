package transfer_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/pdcgo/site_ledger_service/authorization/authorization_mock"
	"github.com/pdcgo/site_ledger_service/credit"
	"github.com/pdcgo/site_ledger_service/expense"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_mock"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/pdcgo/site_ledger_service/report"
	"github.com/pdcgo/site_ledger_service/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func countTransfer(t *testing.T, db *gorm.DB) int64 {
	var count int64
	err := db.Model(&ledger_model.FundTransfer{}).Count(&count).Error
	assert.Nil(t, err)
	return count
}

func TestTransferService(t *testing.T) {
	var db gorm.DB

	accA := ledger_model.BankAccount{InitialBalance: decimal.NewFromInt(1000)}
	accB := ledger_model.BankAccount{InitialBalance: decimal.NewFromInt(250)}

	moretest.Suite(t, "transfer service",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.MigrateLedger(&db),
			ledger_mock.PopulateAccount(&db, &accA),
			ledger_mock.PopulateAccount(&db, &accB),
		},
		func(t *testing.T) {
			ctx := context.Background()
			admin := authorization_mock.Admin()
			service := transfer.NewTransferService(&db)

			pay := func(from, to string, amount int64) *transfer.TransferPayload {
				return &transfer.TransferPayload{
					FromAccountID: from,
					ToAccountID:   to,
					Amount:        decimal.NewFromInt(amount),
					Date:          ledger_model.NewDate(2025, 4, 1),
					Description:   "site float",
				}
			}

			t.Run("self transfer rejected before mutation", func(t *testing.T) {
				_, err := service.TransferCreate(ctx, admin, pay(accA.ID, accA.ID, 100))
				assert.ErrorIs(t, err, ledger_core.ErrSameAccount)

				var verr *ledger_core.ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.Equal(t, int64(0), countTransfer(t, &db))
				ledger_mock.AssertBalance(t, &db, accA.ID, 1000)
			})

			t.Run("round trip restores balances", func(t *testing.T) {
				tf, err := service.TransferCreate(ctx, admin, pay(accA.ID, accB.ID, 300))
				assert.Nil(t, err)
				ledger_mock.AssertBalance(t, &db, accA.ID, 700)
				ledger_mock.AssertBalance(t, &db, accB.ID, 550)

				err = service.TransferDelete(ctx, admin, tf.ID)
				assert.Nil(t, err)
				ledger_mock.AssertBalance(t, &db, accA.ID, 1000)
				ledger_mock.AssertBalance(t, &db, accB.ID, 250)
				assert.Equal(t, int64(0), countTransfer(t, &db))
			})

			t.Run("overdraft allowed", func(t *testing.T) {
				tf, err := service.TransferCreate(ctx, admin, pay(accB.ID, accA.ID, 400))
				assert.Nil(t, err)
				ledger_mock.AssertBalance(t, &db, accB.ID, -150)

				err = service.TransferDelete(ctx, admin, tf.ID)
				assert.Nil(t, err)
				ledger_mock.AssertBalance(t, &db, accB.ID, 250)
			})

			t.Run("injected balance failure keeps nothing", func(t *testing.T) {
				restore := ledger_mock.FailBalanceUpdate(&db)
				_, err := service.TransferCreate(ctx, admin, pay(accA.ID, accB.ID, 300))
				restore()

				assert.NotNil(t, err)
				assert.Equal(t, int64(0), countTransfer(t, &db))
				ledger_mock.AssertBalance(t, &db, accA.ID, 1000)
				ledger_mock.AssertBalance(t, &db, accB.ID, 250)
			})

			t.Run("unknown destination", func(t *testing.T) {
				_, err := service.TransferCreate(ctx, admin, pay(accA.ID, "missing", 10))
				assert.ErrorIs(t, err, ledger_core.ErrAccountNotFound)
				assert.Equal(t, int64(0), countTransfer(t, &db))
			})

			t.Run("delete missing", func(t *testing.T) {
				err := service.TransferDelete(ctx, admin, "missing")
				assert.ErrorIs(t, err, ledger_core.ErrRecordNotFound)
			})

			t.Run("list with direction", func(t *testing.T) {
				_, err := service.TransferCreate(ctx, admin, pay(accB.ID, accA.ID, 20))
				assert.Nil(t, err)

				items, err := service.TransferList(ctx, authorization_mock.Viewer(), &report.Filter{BankAccountID: accA.ID})
				assert.Nil(t, err)
				assert.Len(t, items, 1)
				assert.Equal(t, report.DirectionIn, items[0].Direction)
				assert.NotNil(t, items[0].FromAccount)
			})
		},
	)
}

func TestLedgerScenario(t *testing.T) {
	var db gorm.DB

	master := ledger_mock.Master{}
	accA := ledger_model.BankAccount{InitialBalance: decimal.NewFromInt(1000)}
	accB := ledger_model.BankAccount{InitialBalance: decimal.NewFromInt(75)}

	moretest.Suite(t, "balance scenario",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.MigrateLedger(&db),
			ledger_mock.PopulateMaster(&db, &master),
			ledger_mock.PopulateAccount(&db, &accA),
			ledger_mock.PopulateAccount(&db, &accB),
		},
		func(t *testing.T) {
			ctx := context.Background()
			admin := authorization_mock.Admin()
			date := ledger_model.NewDate(2025, 5, 5)

			_, err := expense.NewExpenseService(&db).ExpenseCreate(ctx, admin, &expense.ExpensePayload{
				SiteID:        master.Site.ID,
				VendorID:      master.Vendor.ID,
				CategoryID:    master.Category.ID,
				Date:          date,
				Amount:        decimal.NewFromInt(200),
				PaymentStatus: ledger_model.PaymentPaid,
				PaymentMethod: ledger_model.MethodBankTransfer,
				BankAccountID: &accA.ID,
			})
			assert.Nil(t, err)
			ledger_mock.AssertBalance(t, &db, accA.ID, 800)

			_, err = credit.NewCreditService(&db).CreditCreate(ctx, admin, &credit.CreditPayload{
				Date:          date,
				Amount:        decimal.NewFromInt(500),
				PaymentMethod: ledger_model.MethodBankTransfer,
				BankAccountID: &accA.ID,
			})
			assert.Nil(t, err)
			ledger_mock.AssertBalance(t, &db, accA.ID, 1300)

			service := transfer.NewTransferService(&db)
			tf, err := service.TransferCreate(ctx, admin, &transfer.TransferPayload{
				FromAccountID: accA.ID,
				ToAccountID:   accB.ID,
				Amount:        decimal.NewFromInt(300),
				Date:          date,
			})
			assert.Nil(t, err)
			ledger_mock.AssertBalance(t, &db, accA.ID, 1000)
			ledger_mock.AssertBalance(t, &db, accB.ID, 375)

			err = service.TransferDelete(ctx, admin, tf.ID)
			assert.Nil(t, err)
			ledger_mock.AssertBalance(t, &db, accA.ID, 1300)
			ledger_mock.AssertBalance(t, &db, accB.ID, 75)
		},
	)
}

func TestTransferConcurrentCreate(t *testing.T) {
	var db gorm.DB

	accA := ledger_model.BankAccount{InitialBalance: decimal.NewFromInt(5000)}
	accB := ledger_model.BankAccount{InitialBalance: decimal.NewFromInt(100)}

	moretest.Suite(t, "concurrent transfer create",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			ledger_mock.MigrateLedger(&db),
			ledger_mock.PopulateAccount(&db, &accA),
			ledger_mock.PopulateAccount(&db, &accB),
		},
		func(t *testing.T) {
			ctx := context.Background()
			admin := authorization_mock.Admin()
			service := transfer.NewTransferService(&db)

			const workers = 20
			const amount = 25

			var committed atomic.Int64
			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()

					_, err := service.TransferCreate(ctx, admin, &transfer.TransferPayload{
						FromAccountID: accA.ID,
						ToAccountID:   accB.ID,
						Amount:        decimal.NewFromInt(amount),
						Date:          ledger_model.NewDate(2025, 4, 3),
					})
					if err == nil {
						committed.Add(1)
					}
				}()
			}
			wg.Wait()

			rows := countTransfer(t, &db)
			assert.Positive(t, rows)
			assert.Equal(t, committed.Load(), rows)
			ledger_mock.AssertBalance(t, &db, accA.ID, 5000-amount*rows)
			ledger_mock.AssertBalance(t, &db, accB.ID, 100+amount*rows)
		},
	)
}
