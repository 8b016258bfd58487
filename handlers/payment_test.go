package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G-Mursalin/dent-care-server-site/config"
	"github.com/G-Mursalin/dent-care-server-site/services"
)

// Compile-time check that the mock satisfies the processor contract.
var _ services.PaymentClient = (*MockPaymentClient)(nil)

type MockPaymentClient struct {
	CreatePaymentIntentFunc func(amount int64, currency string) (string, error)
}

func (m *MockPaymentClient) CreatePaymentIntent(amount int64, currency string) (string, error) {
	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(amount, currency)
	}
	return "", errors.New("CreatePaymentIntentFunc not implemented in mock")
}

func newPaymentRouter(mock *MockPaymentClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(mock, &config.Config{})
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	return r
}

func TestCreatePaymentIntentConvertsToMinorUnits(t *testing.T) {
	var gotAmount int64
	var gotCurrency string
	mock := &MockPaymentClient{
		CreatePaymentIntentFunc: func(amount int64, currency string) (string, error) {
			gotAmount = amount
			gotCurrency = currency
			return "pi_secret_123", nil
		},
	}
	r := newPaymentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price": 45.5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4550), gotAmount)
	assert.Equal(t, "usd", gotCurrency)
	assert.Contains(t, w.Body.String(), "pi_secret_123")
}

func TestCreatePaymentIntentProcessorFailure(t *testing.T) {
	mock := &MockPaymentClient{
		CreatePaymentIntentFunc: func(amount int64, currency string) (string, error) {
			return "", errors.New("stripe: boom")
		},
	}
	r := newPaymentRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price": 10}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// No processor internals leak into the response
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestCreatePaymentIntentRejectsBadBody(t *testing.T) {
	r := newPaymentRouter(&MockPaymentClient{})

	for _, body := range []string{`{}`, `{"price": 0}`, `{"price": -3}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}
