package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// helper: new Echo with the middleware and a simple route
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(IdempotencyMiddleware(rdb, ttl))
	e.POST("/contracts", handler)
	e.GET("/contracts", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func validHeaders() map[string]string {
	return map[string]string{
		"Fm-Request-Id":  "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"Fm-Request-At":  time.Now().UTC().Format(time.RFC3339),
		"Fm-Customer-Id": "1-2345-67890-12-3", // separators are tolerated
	}
}

// simple handler to exercise respRecorder capture & saveFinal
func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"contract_number": "CT-20260828-abc123"})
}

func Test_BypassOnGET_NoHeadersRequired(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/contracts", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_HeaderValidationFailures(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	cases := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"missing request id", func(h map[string]string) { delete(h, "Fm-Request-Id") }},
		{"bad request id", func(h map[string]string) { h["Fm-Request-Id"] = "NOT-VALID" }},
		{"missing request at", func(h map[string]string) { delete(h, "Fm-Request-At") }},
		{"naive timestamp", func(h map[string]string) { h["Fm-Request-At"] = "2026-08-28T10:00:00" }},
		{"skewed timestamp", func(h map[string]string) {
			h["Fm-Request-At"] = time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
		}},
		{"missing customer id", func(h map[string]string) { delete(h, "Fm-Customer-Id") }},
		{"short customer id", func(h map[string]string) { h["Fm-Customer-Id"] = "12345" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := validHeaders()
			tc.mutate(h)
			rec := doReq(t, e, http.MethodPost, "/contracts", mkJSONBody(t, map[string]int{"x": 1}), h)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d (%s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func Test_ReplayCompletedResponse(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return okCreatedHandler(c)
	})

	body := map[string]any{"plan_id": "p12", "principal": 40000}
	h := validHeaders()

	first := doReq(t, e, http.MethodPost, "/contracts", mkJSONBody(t, body), h)
	if first.Code != http.StatusCreated {
		t.Fatalf("first call: want 201, got %d", first.Code)
	}

	second := doReq(t, e, http.MethodPost, "/contracts", mkJSONBody(t, body), h)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay: want 201, got %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1 (duplicate must be replayed, not re-executed)", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func Test_SameRequestIDDifferentBodyConflicts(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	h := validHeaders()
	if rec := doReq(t, e, http.MethodPost, "/contracts", mkJSONBody(t, map[string]int{"principal": 40000}), h); rec.Code != http.StatusCreated {
		t.Fatalf("setup call failed: %d", rec.Code)
	}
	rec := doReq(t, e, http.MethodPost, "/contracts", mkJSONBody(t, map[string]int{"principal": 99999}), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409 for reused id with different body, got %d", rec.Code)
	}
}

func Test_InFlightSubmissionConflicts(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	// Simulate an in-flight submission by planting the provisional entry.
	h := validHeaders()
	body := mkJSONBody(t, map[string]int{"principal": 40000})
	raw, _ := io.ReadAll(body)
	key := buildKey(http.MethodPost, "/contracts", "1234567890123", h["Fm-Request-Id"])
	entry, _ := json.Marshal(idempEntry{InProgress: true, BodySHA256: bodyHash(raw)})
	if err := rdb.Set(context.Background(), key, entry, time.Minute).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := doReq(t, e, http.MethodPost, "/contracts", bytes.NewReader(raw), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("want 409 while in progress, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func Test_RedisDownIsServiceUnavailable(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)
	mr.Close() // store gone before the request

	rec := doReq(t, e, http.MethodPost, "/contracts", mkJSONBody(t, map[string]int{"x": 1}), validHeaders())
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("want 503 when the idempotency store is down, got %d", rec.Code)
	}
}
