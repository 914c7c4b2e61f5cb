package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"payment-service/internal/domain"
	"payment-service/internal/dto"
)

// OrderClient reads order details from the sibling order service.
type OrderClient interface {
	FetchOrder(ctx context.Context, orderID int) (*dto.OrderDto, error)
}

type orderClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOrderClient(baseURL string, timeout time.Duration, logger *zap.Logger) OrderClient {
	return &orderClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchOrder performs GET <baseURL>/<orderID>. Transport failures, non-2xx
// responses and undecodable bodies all surface as infrastructure errors.
func (c *orderClient) FetchOrder(ctx context.Context, orderID int) (*dto.OrderDto, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.InfrastructureError{Op: "build order request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Order service request failed", zap.Int("order_id", orderID), zap.Error(err))
		return nil, &domain.InfrastructureError{Op: "fetch order", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a bounded amount so the connection can be reused; anything
		// beyond that is dropped with the connection.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		c.logger.Warn("Order service returned non-2xx status",
			zap.Int("order_id", orderID),
			zap.Int("status_code", resp.StatusCode))
		return nil, &domain.InfrastructureError{
			Op:  "fetch order",
			Err: fmt.Errorf("order service returned status %d for order %d", resp.StatusCode, orderID),
		}
	}

	var order dto.OrderDto
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		c.logger.Error("Failed to decode order response", zap.Int("order_id", orderID), zap.Error(err))
		return nil, &domain.InfrastructureError{Op: "decode order response", Err: err}
	}
	return &order, nil
}
