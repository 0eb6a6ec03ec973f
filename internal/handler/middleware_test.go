package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(testTracer, &stubMarket{}, "s3cret").RegisterRoutes(r)

	cases := []struct {
		name   string
		header string
		bearer string
		want   int
	}{
		{"missing", "", "", http.StatusUnauthorized},
		{"wrong", "nope", "", http.StatusForbidden},
		{"valid", "s3cret", "", http.StatusOK},
		{"padded", "  s3cret ", "", http.StatusOK},
		{"bearer", "", "Bearer s3cret", http.StatusOK},
		{"bearer lowercase", "", "bearer s3cret", http.StatusOK},
		{"bearer wrong", "", "Bearer nope", http.StatusForbidden},
		{"basic scheme", "", "Basic s3cret", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/fear-greed", nil)
			if tc.header != "" {
				req.Header.Set("X-API-Key", tc.header)
			}
			if tc.bearer != "" {
				req.Header.Set("Authorization", tc.bearer)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestAPIKeyAuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth("  "))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("blank key should disable auth, got %d", w.Code)
	}
}
