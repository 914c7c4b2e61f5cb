package orders

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"payment-service/internal/domain"
)

func newTestClient(baseURL string) OrderClient {
	return NewOrderClient(baseURL, 2*time.Second, zap.NewNop())
}

func TestFetchOrder_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"orderId":7,"orderDesc":"Test Order","orderFee":99.99}`)
	}))
	defer server.Close()

	order, err := newTestClient(server.URL).FetchOrder(context.Background(), 7)
	if err != nil {
		t.Fatalf("fetchOrder failed: %v", err)
	}

	if gotPath != "/7" {
		t.Errorf("expected request path /7, got %s", gotPath)
	}
	if order.OrderID != 7 {
		t.Errorf("expected orderId 7, got %d", order.OrderID)
	}
	if order.OrderDesc == nil || *order.OrderDesc != "Test Order" {
		t.Errorf("expected orderDesc decoded, got %v", order.OrderDesc)
	}
	if order.OrderFee == nil || *order.OrderFee != 99.99 {
		t.Errorf("expected orderFee decoded, got %v", order.OrderFee)
	}
}

func TestFetchOrder_TrailingSlashBaseURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"orderId":1}`)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL + "/api/orders/").FetchOrder(context.Background(), 1); err != nil {
		t.Fatalf("fetchOrder failed: %v", err)
	}
	if gotPath != "/api/orders/1" {
		t.Errorf("expected /api/orders/1, got %s", gotPath)
	}
}

func TestFetchOrder_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchOrder(context.Background(), 1)

	var infraErr *domain.InfrastructureError
	if !errors.As(err, &infraErr) {
		t.Fatalf("expected InfrastructureError, got %T: %v", err, err)
	}
}

func TestFetchOrder_Non2xxLargeBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		chunk := strings.Repeat("x", 1024)
		for i := 0; i < 1024; i++ {
			fmt.Fprint(w, chunk)
		}
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchOrder(context.Background(), 1)

	var infraErr *domain.InfrastructureError
	if !errors.As(err, &infraErr) {
		t.Fatalf("expected InfrastructureError despite oversized error body, got %v", err)
	}
}

func TestFetchOrder_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"orderId":`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchOrder(context.Background(), 1)

	var infraErr *domain.InfrastructureError
	if !errors.As(err, &infraErr) {
		t.Fatalf("expected InfrastructureError, got %v", err)
	}
}

func TestFetchOrder_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).FetchOrder(context.Background(), 1)

	var infraErr *domain.InfrastructureError
	if !errors.As(err, &infraErr) {
		t.Fatalf("expected InfrastructureError, got %v", err)
	}
}

func TestFetchOrder_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestClient(server.URL).FetchOrder(ctx, 1); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
