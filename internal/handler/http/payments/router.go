package payments_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go.uber.org/zap"

	"payment-service/internal/app/payments"
)

// RegisterRoutes mounts the payment CRUD endpoints under basePath and a
// health probe at /health.
func RegisterRoutes(r chi.Router, basePath string, s payments.PaymentService, l *zap.Logger) {
	handler := NewPaymentHandler(s, l.With(zap.String("component", "PaymentHTTPHandler")))

	r.Route("/health", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Payments service is healthy!"))
		})
	})

	r.Route(basePath, func(r chi.Router) {
		r.Get("/", handler.FindAllHandler)
		r.Post("/", handler.SaveHandler)
		r.Put("/", handler.UpdateHandler)
		r.Get("/{paymentId}", handler.FindByIDHandler)
		r.Delete("/{paymentId}", handler.DeleteByIDHandler)
	})
}
