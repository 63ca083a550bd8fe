package gateway

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/pdcgo/site_ledger_service/report"
)

// allValue is what the dashboard sends for an unfiltered dimension.
const allValue = "all"

func queryValue(c *gin.Context, key string) string {
	value := strings.TrimSpace(c.Query(key))
	if strings.EqualFold(value, allValue) {
		return ""
	}
	return value
}

func queryDate(c *gin.Context, key string) (*ledger_model.Date, error) {
	value := queryValue(c, key)
	if value == "" {
		return nil, nil
	}

	date, err := ledger_model.ParseDate(value)
	if err != nil {
		return nil, ledger_core.NewValidationError(key, err.Error())
	}

	return &date, nil
}

func bindFilter(c *gin.Context) (*report.Filter, error) {
	var err error
	filter := report.Filter{
		SiteID:        queryValue(c, "site_id"),
		VendorID:      queryValue(c, "vendor_id"),
		CategoryID:    queryValue(c, "category_id"),
		BankAccountID: queryValue(c, "bank_account_id"),
		PaymentStatus: ledger_model.PaymentStatus(queryValue(c, "payment_status")),
	}

	filter.StartDate, err = queryDate(c, "start_date")
	if err != nil {
		return nil, err
	}

	filter.EndDate, err = queryDate(c, "end_date")
	if err != nil {
		return nil, err
	}

	return &filter, nil
}
