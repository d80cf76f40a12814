package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sessionStub bool

func (s sessionStub) Active() bool {
	return bool(s)
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		active         bool
		expectedStatus int
		expectedCalled bool
	}{
		{"Active session", true, http.StatusOK, true},
		{"Signed out", false, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			SessionMiddleware(sessionStub(tt.active))(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/wallet", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCalled, called)
		})
	}
}
