package site_ledger_service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/pdcgo/site_ledger_service"
	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/configs"
	"github.com/pdcgo/site_ledger_service/gateway"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "service register",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
		},
		func(t *testing.T) {
			t.Run("migration creates ledger tables", func(t *testing.T) {
				err := site_ledger_service.NewMigrationHandler(&db)()
				assert.Nil(t, err)

				for _, model := range ledger_model.Models() {
					assert.True(t, db.Migrator().HasTable(model))
				}
			})

			t.Run("routes mounted", func(t *testing.T) {
				engine := gateway.NewEngine(gin.TestMode)
				register := site_ledger_service.NewRegister(&db, authorization.NewJwtAuthorization("secret"), engine)
				register()

				rec := httptest.NewRecorder()
				engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
				assert.Equal(t, http.StatusOK, rec.Code)

				rec = httptest.NewRecorder()
				engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses", nil))
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})

			t.Run("events disabled without brokers", func(t *testing.T) {
				cfg := &configs.AppConfig{}
				shutdown := site_ledger_service.NewEventHandler(cfg)()
				shutdown()
			})
		},
	)
}
