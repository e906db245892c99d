package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func dateRangeContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseDateRange_Defaults(t *testing.T) {
	from, to, err := parseDateRange(dateRangeContext(t, "/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := to.Sub(from); got != 30*24*time.Hour {
		t.Fatalf("expected a 30 day window, got %v", got)
	}
	if time.Since(to) > time.Minute {
		t.Fatalf("default to should be now, got %v", to)
	}
}

func TestParseDateRange_ToOnlyHistorical(t *testing.T) {
	from, to, err := parseDateRange(dateRangeContext(t, "/?to=2020-01-01"))
	if err != nil {
		t.Fatalf("historical to rejected: %v", err)
	}
	if to.Format(dateLayout) != "2020-01-01" {
		t.Fatalf("unexpected to: %v", to)
	}
	if from.Format(dateLayout) != "2019-12-02" {
		t.Fatalf("from must trail to by 30 days, got %v", from)
	}
}

func TestParseDateRange_Explicit(t *testing.T) {
	from, to, err := parseDateRange(dateRangeContext(t, "/?from=2026-01-01&to=2026-03-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from.Format(dateLayout) != "2026-01-01" || to.Format(dateLayout) != "2026-03-01" {
		t.Fatalf("unexpected range: %v .. %v", from, to)
	}
}

func TestParseDateRange_Inverted(t *testing.T) {
	_, _, err := parseDateRange(dateRangeContext(t, "/?from=2026-03-01&to=2026-01-01"))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestParseDateRange_BadFormat(t *testing.T) {
	_, _, err := parseDateRange(dateRangeContext(t, "/?to=01/02/2026"))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
