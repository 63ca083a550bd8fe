package site_ledger_service

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/bank_account"
	"github.com/pdcgo/site_ledger_service/configs"
	"github.com/pdcgo/site_ledger_service/credit"
	"github.com/pdcgo/site_ledger_service/expense"
	"github.com/pdcgo/site_ledger_service/gateway"
	"github.com/pdcgo/site_ledger_service/ledger_event"
	"github.com/pdcgo/site_ledger_service/report"
	"github.com/pdcgo/site_ledger_service/transfer"
	"gorm.io/gorm"
)

type RegisterHandler func()

func NewRegister(
	db *gorm.DB,
	auth authorization.Authorization,
	engine *gin.Engine,
) RegisterHandler {

	return func() {
		gateway.RegisterHealth(engine, func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})

		gateway.Mount(engine, auth,
			gateway.NewRecordHandler(
				expense.NewExpenseService(db),
				credit.NewCreditService(db),
				transfer.NewTransferService(db),
			),
			gateway.NewReportHandler(
				report.NewReportService(db),
				bank_account.NewAccountService(db),
			),
		)
	}
}

// EventHandler starts balance change publishing and returns its shutdown.
type EventHandler func() func()

func NewEventHandler(
	cfg *configs.AppConfig,
) EventHandler {
	return func() func() {
		if !cfg.Kafka.Enabled() {
			slog.Info("kafka brokers not configured, balance events disabled")
			return func() {}
		}

		publisher := ledger_event.NewPublisher(
			ledger_event.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic),
		)
		unregister := publisher.Register()

		slog.Info("publishing balance events", slog.String("topic", cfg.Kafka.Topic))
		return func() {
			unregister()
			err := publisher.Close()
			if err != nil {
				slog.Error(err.Error())
			}
		}
	}
}
