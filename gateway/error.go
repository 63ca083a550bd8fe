package gateway

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_core"
	"go.opentelemetry.io/otel/trace"
)

func StatusOf(err error) int {
	var verr *ledger_core.ValidationError
	var perr *authorization.PermissionError

	switch {
	case errors.As(err, &verr), errors.Is(err, ledger_core.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, authorization.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &perr):
		return http.StatusForbidden
	case errors.Is(err, ledger_core.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger_core.ErrAccountNotFound), errors.Is(err, ledger_core.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := StatusOf(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
			slog.String("trace_id", trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID().String()),
		)
		message = "internal server error"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, payload any) bool {
	err := c.ShouldBindJSON(payload)
	if err != nil {
		writeError(c, ledger_core.NewValidationError("body", err.Error()))
		return false
	}
	return true
}
