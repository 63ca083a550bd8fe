package ledger_model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	t.Run("parse plain date", func(t *testing.T) {
		d, err := ledger_model.ParseDate("2025-01-15")
		assert.Nil(t, err)
		assert.Equal(t, "2025-01-15", d.String())
	})

	t.Run("parse rfc3339 keeps calendar day", func(t *testing.T) {
		d, err := ledger_model.ParseDate("2025-01-15T23:10:00+07:00")
		assert.Nil(t, err)
		assert.Equal(t, "2025-01-15", d.String())
	})

	t.Run("parse invalid", func(t *testing.T) {
		_, err := ledger_model.ParseDate("15/01/2025")
		assert.NotNil(t, err)
	})

	t.Run("json round", func(t *testing.T) {
		payload := struct {
			Date ledger_model.Date `json:"date"`
		}{}

		err := json.Unmarshal([]byte(`{"date":"2025-03-02"}`), &payload)
		assert.Nil(t, err)
		assert.Equal(t, ledger_model.NewDate(2025, time.March, 2), payload.Date)

		raw, err := json.Marshal(payload)
		assert.Nil(t, err)
		assert.Equal(t, `{"date":"2025-03-02"}`, string(raw))
	})

	t.Run("scan driver values", func(t *testing.T) {
		var d ledger_model.Date

		err := d.Scan(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))
		assert.Nil(t, err)
		assert.Equal(t, "2024-12-31", d.String())

		err = d.Scan("2024-11-30 00:00:00+00:00")
		assert.Nil(t, err)
		assert.Equal(t, "2024-11-30", d.String())

		err = d.Scan([]byte("2024-10-01"))
		assert.Nil(t, err)
		assert.Equal(t, "2024-10-01", d.String())

		err = d.Scan(12)
		assert.NotNil(t, err)
	})

	t.Run("month helpers", func(t *testing.T) {
		d := ledger_model.NewDate(2025, time.March, 31)
		assert.Equal(t, "2025-03-01", d.FirstOfMonth().String())
		assert.Equal(t, "2024-10-01", d.FirstOfMonth().AddMonths(-5).String())
	})
}
