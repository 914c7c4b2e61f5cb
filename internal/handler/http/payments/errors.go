package payments_http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"payment-service/internal/domain"
)

// ExceptionMsg is the error envelope every failed request renders. The msg
// framing ("#### <text>! ####") is part of the API contract.
type ExceptionMsg struct {
	Msg        string `json:"msg"`
	HTTPStatus string `json:"httpStatus"`
	Timestamp  string `json:"timestamp"`
}

func newExceptionMsg(message string, status int) ExceptionMsg {
	return ExceptionMsg{
		Msg:        fmt.Sprintf("#### %s! ####", message),
		HTTPStatus: statusName(status),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// renderError is the single choke point mapping domain errors to HTTP. The
// whole taxonomy renders as 400 — not-found included, that status is part of
// the existing contract — and anything unclassified as 500.
func renderError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError

	var notFoundErr *domain.PaymentNotFoundError
	var validationErr *domain.ValidationError
	var infraErr *domain.InfrastructureError
	switch {
	case errors.As(err, &notFoundErr), errors.As(err, &validationErr), errors.As(err, &infraErr):
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(newExceptionMsg(err.Error(), status)); encErr != nil {
		logger.Error("Failed to write error response", zap.Error(encErr))
	}
}

// statusName renders the status in the envelope's UPPER_SNAKE register,
// e.g. 400 -> BAD_REQUEST.
func statusName(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
