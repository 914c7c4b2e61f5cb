package payments_http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"payment-service/internal/app/payments"
	"payment-service/internal/domain"
	"payment-service/internal/dto"
)

type PaymentHandler struct {
	service payments.PaymentService
	logger  *zap.Logger
}

func NewPaymentHandler(s payments.PaymentService, l *zap.Logger) *PaymentHandler {
	return &PaymentHandler{service: s, logger: l}
}

func (h *PaymentHandler) FindAllHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Error listing payments", zap.Error(err))
		renderError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto.PaymentCollection{Collection: result})
}

func (h *PaymentHandler) FindByIDHandler(w http.ResponseWriter, r *http.Request) {
	paymentID, err := paymentIDParam(r)
	if err != nil {
		h.logger.Warn("Invalid payment id in request", zap.String("payment_id", chi.URLParam(r, "paymentId")))
		renderError(w, h.logger, err)
		return
	}

	result, err := h.service.FindByID(r.Context(), paymentID)
	if err != nil {
		h.logger.Warn("Error getting payment", zap.Int("payment_id", paymentID), zap.Error(err))
		renderError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *PaymentHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodePaymentDto(r)
	if err != nil {
		h.logger.Warn("Invalid request body for SavePayment", zap.Error(err))
		renderError(w, h.logger, err)
		return
	}

	result, err := h.service.Save(r.Context(), req)
	if err != nil {
		h.logger.Error("Error saving payment", zap.Error(err))
		renderError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *PaymentHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodePaymentDto(r)
	if err != nil {
		h.logger.Warn("Invalid request body for UpdatePayment", zap.Error(err))
		renderError(w, h.logger, err)
		return
	}

	result, err := h.service.Update(r.Context(), req)
	if err != nil {
		h.logger.Error("Error updating payment", zap.Error(err))
		renderError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *PaymentHandler) DeleteByIDHandler(w http.ResponseWriter, r *http.Request) {
	paymentID, err := paymentIDParam(r)
	if err != nil {
		h.logger.Warn("Invalid payment id in request", zap.String("payment_id", chi.URLParam(r, "paymentId")))
		renderError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteByID(r.Context(), paymentID); err != nil {
		h.logger.Error("Error deleting payment", zap.Int("payment_id", paymentID), zap.Error(err))
		renderError(w, h.logger, err)
		return
	}

	// The delete contract returns the bare literal true.
	writeJSON(w, h.logger, http.StatusOK, true)
}

func paymentIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "paymentId")
	paymentID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{Reason: fmt.Sprintf("invalid payment id: %s", raw)}
	}
	return paymentID, nil
}

func decodePaymentDto(r *http.Request) (*dto.PaymentDto, error) {
	var req dto.PaymentDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &domain.ValidationError{Reason: fmt.Sprintf("invalid request body: %v", err)}
	}
	if req.PaymentStatus != nil && !domain.IsValidStatus(*req.PaymentStatus) {
		return nil, &domain.ValidationError{Reason: fmt.Sprintf("invalid payment status: %s", *req.PaymentStatus)}
	}
	return &req, nil
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to write JSON response", zap.Error(err))
	}
}
