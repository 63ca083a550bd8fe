package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service/credit"
	"github.com/pdcgo/site_ledger_service/expense"
	"github.com/pdcgo/site_ledger_service/transfer"
)

type RecordHandler struct {
	expense  ExpenseService
	credit   CreditService
	transfer TransferService
}

func NewRecordHandler(expense ExpenseService, credit CreditService, transfer TransferService) *RecordHandler {
	return &RecordHandler{
		expense:  expense,
		credit:   credit,
		transfer: transfer,
	}
}

func (h *RecordHandler) RegisterRoutes(r gin.IRouter) {
	expenses := r.Group("/expenses")
	{
		expenses.POST("", h.ExpenseCreate)
		expenses.GET("", h.ExpenseList)
		expenses.PUT("/:id", h.ExpenseUpdate)
		expenses.DELETE("/:id", h.ExpenseDelete)
	}

	credits := r.Group("/credits")
	{
		credits.POST("", h.CreditCreate)
		credits.GET("", h.CreditList)
		credits.PUT("/:id", h.CreditUpdate)
		credits.DELETE("/:id", h.CreditDelete)
	}

	transfers := r.Group("/fund-transfers")
	{
		transfers.POST("", h.TransferCreate)
		transfers.GET("", h.TransferList)
		transfers.DELETE("/:id", h.TransferDelete)
	}
}

// POST /expenses
func (h *RecordHandler) ExpenseCreate(c *gin.Context) {
	var pay expense.ExpensePayload
	if !bindJSON(c, &pay) {
		return
	}

	exp, err := h.expense.ExpenseCreate(c.Request.Context(), identityOf(c), &pay)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exp)
}

func (h *RecordHandler) ExpenseList(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}

	exps, err := h.expense.ExpenseList(c.Request.Context(), identityOf(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": exps})
}

// PUT /expenses/:id
func (h *RecordHandler) ExpenseUpdate(c *gin.Context) {
	var pay expense.ExpensePayload
	if !bindJSON(c, &pay) {
		return
	}

	exp, err := h.expense.ExpenseUpdate(c.Request.Context(), identityOf(c), c.Param("id"), &pay)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, exp)
}

func (h *RecordHandler) ExpenseDelete(c *gin.Context) {
	err := h.expense.ExpenseDelete(c.Request.Context(), identityOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}

// POST /credits
func (h *RecordHandler) CreditCreate(c *gin.Context) {
	var pay credit.CreditPayload
	if !bindJSON(c, &pay) {
		return
	}

	cred, err := h.credit.CreditCreate(c.Request.Context(), identityOf(c), &pay)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cred)
}

func (h *RecordHandler) CreditList(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}

	creds, err := h.credit.CreditList(c.Request.Context(), identityOf(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": creds})
}

func (h *RecordHandler) CreditUpdate(c *gin.Context) {
	var pay credit.CreditPayload
	if !bindJSON(c, &pay) {
		return
	}

	cred, err := h.credit.CreditUpdate(c.Request.Context(), identityOf(c), c.Param("id"), &pay)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cred)
}

func (h *RecordHandler) CreditDelete(c *gin.Context) {
	err := h.credit.CreditDelete(c.Request.Context(), identityOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "credit deleted"})
}

// POST /fund-transfers
func (h *RecordHandler) TransferCreate(c *gin.Context) {
	var pay transfer.TransferPayload
	if !bindJSON(c, &pay) {
		return
	}

	tf, err := h.transfer.TransferCreate(c.Request.Context(), identityOf(c), &pay)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tf)
}

func (h *RecordHandler) TransferList(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}

	tfs, err := h.transfer.TransferList(c.Request.Context(), identityOf(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tfs})
}

// DELETE /fund-transfers/:id reverses both legs.
func (h *RecordHandler) TransferDelete(c *gin.Context) {
	err := h.transfer.TransferDelete(c.Request.Context(), identityOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "fund transfer deleted"})
}
