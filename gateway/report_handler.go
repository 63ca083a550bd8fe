package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service/ledger_model"
)

type ReportHandler struct {
	report  ReportService
	account AccountService
}

func NewReportHandler(report ReportService, account AccountService) *ReportHandler {
	return &ReportHandler{
		report:  report,
		account: account,
	}
}

func (h *ReportHandler) RegisterRoutes(r gin.IRouter) {
	reports := r.Group("/reports")
	{
		reports.GET("/summary", h.Summary)
		reports.GET("/dashboard", h.Dashboard)
	}

	accounts := r.Group("/api/bank-accounts")
	{
		accounts.GET("", h.AccountList)
		accounts.GET("/:id/reconcile", h.AccountReconcile)
	}
}

// GET /reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.report.Summary(c.Request.Context(), identityOf(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /reports/dashboard, optionally pinned to ?date=YYYY-MM-DD.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	today := ledger_model.DateOf(time.Now())

	date, err := queryDate(c, "date")
	if err != nil {
		writeError(c, err)
		return
	}
	if date != nil {
		today = *date
	}

	result, err := h.report.Dashboard(c.Request.Context(), identityOf(c), today)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReportHandler) AccountList(c *gin.Context) {
	accs, err := h.account.AccountList(c.Request.Context(), identityOf(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": accs})
}

func (h *ReportHandler) AccountReconcile(c *gin.Context) {
	result, err := h.account.AccountReconcile(c.Request.Context(), identityOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
