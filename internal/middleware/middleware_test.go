package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stocktrend/internal/domain/dto"
	"github.com/guttosm/stocktrend/internal/metrics"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name        string
		handler     gin.HandlerFunc
		wantCode    int
		wantMessage string
	}{
		{
			name:        "plain error becomes 500",
			handler:     func(c *gin.Context) { _ = c.Error(assertErr{}) },
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name: "error response kept",
			handler: func(c *gin.Context) {
				_ = c.Error(dto.NewErrorResponse("failed to fetch stock data", assertErr{}))
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "failed to fetch stock data",
		},
		{
			name: "written response untouched",
			handler: func(c *gin.Context) {
				_ = c.Error(assertErr{})
				c.String(http.StatusTeapot, "short and stout")
			},
			wantCode: http.StatusTeapot,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", tc.handler)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.wantCode {
				t.Fatalf("code=%d want %d", w.Code, tc.wantCode)
			}
			if tc.wantMessage == "" {
				return
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != tc.wantMessage || body.ErrorDetails != "boom" {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("secret detail") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret detail") {
		t.Fatalf("panic value leaked to client: %s", w.Body.String())
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "at limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(NewRateLimiter(tc.lim, time.Minute).Handler())
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.allow("10.0.0.1") {
		t.Fatalf("first request should pass")
	}
	if rl.allow("10.0.0.1") {
		t.Fatalf("second request in window should be limited")
	}
	if !rl.allow("10.0.0.2") {
		t.Fatalf("limits are per client")
	}

	now = now.Add(2 * time.Minute)
	if !rl.allow("10.0.0.1") {
		t.Fatalf("request after window should pass")
	}
	if _, ok := rl.clients["10.0.0.2"]; ok {
		t.Fatalf("expired client should have been swept")
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected json content-type, got %q", ct)
	}
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/things/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := requestCount(t, "/api/things/:id")
	for _, path := range []string{"/api/things/42", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}
	if got := requestCount(t, "/api/things/:id"); got != before+1 {
		t.Fatalf("expected one more request, before=%v after=%v", before, got)
	}
	if got := requestCount(t, "/metrics"); got != 0 {
		t.Fatalf("scrapes should not be counted, got %v", got)
	}
}

func TestMetrics_CountsRecoveredPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(), RecoveryMiddleware())
	r.GET("/api/explode", func(c *gin.Context) { panic("boom") })

	inflight := gaugeValue(t, "stocktrend_http_inflight_requests")
	before := requestCountWithStatus(t, "/api/explode", "500")
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/explode", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("code=%d", w.Code)
		}
	}

	if got := gaugeValue(t, "stocktrend_http_inflight_requests"); got != inflight {
		t.Fatalf("in-flight gauge leaked: before=%v after=%v", inflight, got)
	}
	if got := requestCountWithStatus(t, "/api/explode", "500"); got != before+3 {
		t.Fatalf("recovered panics not counted as 500: before=%v after=%v", before, got)
	}
}

func TestMetrics_DeferredWhenPanicEscapes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Recovery sits outside Metrics here, so the panic unwinds through it.
	r.Use(RecoveryMiddleware(), Metrics())
	r.GET("/api/unwind", func(c *gin.Context) { panic("boom") })

	inflight := gaugeValue(t, "stocktrend_http_inflight_requests")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unwind", nil))
	if got := gaugeValue(t, "stocktrend_http_inflight_requests"); got != inflight {
		t.Fatalf("in-flight gauge leaked: before=%v after=%v", inflight, got)
	}
}

func gaugeValue(t *testing.T, name string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

// requestCountWithStatus reads stocktrend_http_requests_total for one path and status.
func requestCountWithStatus(t *testing.T, path, status string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "stocktrend_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["path"] == path && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

// requestCount sums stocktrend_http_requests_total for one path label.
func requestCount(t *testing.T, path string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != "stocktrend_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "path" && lp.GetValue() == path {
					total += m.GetCounter().GetValue()
				}
			}
		}
	}
	return total
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "http://localhost:3000", want: "*"},
		{name: "empty list allows all", origins: nil, origin: "http://localhost:3000", want: "*"},
		{name: "listed origin", origins: []string{"http://chart.local"}, origin: "http://chart.local", want: "http://chart.local"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tc.origins))
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tc.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Fatalf("allow-origin %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCORS_RejectsUnlistedOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"http://chart.local"}))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("code=%d, want 403", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected allow-origin header")
	}
}
