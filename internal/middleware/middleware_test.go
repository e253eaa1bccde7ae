package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := RateLimitMiddleware(okHandler)

	t.Run("Allows requests within burst", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		for i := 0; i < burstGeneral; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Rejects once burst exhausted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/products", nil)
		req.RemoteAddr = "10.0.0.2:1234"

		var lastCode int
		for i := 0; i < burstGeneral+5; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("Buckets are per client IP", func(t *testing.T) {
		exhausted := httptest.NewRequest("GET", "/", nil)
		exhausted.RemoteAddr = "10.0.0.3:1234"
		for i := 0; i < burstGeneral+1; i++ {
			handler.ServeHTTP(httptest.NewRecorder(), exhausted)
		}

		fresh := httptest.NewRequest("GET", "/", nil)
		fresh.RemoteAddr = "10.0.0.4:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, fresh)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetVisitor_ReusesLimiter(t *testing.T) {
	first := getVisitor("ip:10.9.9.9")
	second := getVisitor("ip:10.9.9.9")
	assert.Same(t, first, second)
}
