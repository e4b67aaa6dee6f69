package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ehr/fhirquery/internal/platform/fhir"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1M", 1 << 20},
		{"10M", 10 << 20},
		{"64K", 64 << 10},
		{"64kb", 64 << 10},
		{"1G", 1 << 30},
		{"1024", 1024},
		{"", 1 << 20},        // default
		{"invalid", 1 << 20}, // default on error
		{"-5K", 1 << 20},
	}

	for _, tt := range tests {
		got := parseLimit(tt.input)
		if got != tt.want {
			t.Errorf("parseLimit(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestBodyLimit_AllowsSmallBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/parse-query", strings.NewReader(`{"query":"covid"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		if err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		if string(b) != `{"query":"covid"}` {
			t.Errorf("unexpected body %q", b)
		}
		called = true
		return c.String(http.StatusOK, "ok")
	}

	if err := BodyLimit("1K")(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
}

func TestBodyLimit_RejectsOversizedBody_ContentLength(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/parse-query", bytes.NewReader(bytes.Repeat([]byte("x"), 2048)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		t.Error("handler should not be called when body exceeds limit")
		return nil
	}

	if err := BodyLimit("1K")(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", rec.Code)
	}

	var oo fhir.OperationOutcome
	if err := json.Unmarshal(rec.Body.Bytes(), &oo); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if oo.ResourceType != "OperationOutcome" || oo.Issue[0].Code != fhir.IssueTypeTooCostly {
		t.Errorf("expected too-costly OperationOutcome, got %+v", oo)
	}
}

func TestBodyLimit_SkipsNilBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	}

	if err := BodyLimit("1")(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to be called for GET with no body")
	}
}

func TestBodyLimit_EnforcesLimitDuringRead(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/parse-query", bytes.NewReader(bytes.Repeat([]byte("a"), 1024)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		_, err := io.ReadAll(c.Request().Body)
		return err
	}

	err := BodyLimit("512")(handler)(c)
	if err == nil {
		t.Fatal("expected error when reading body exceeds limit")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", httpErr.Code)
	}
}

func TestBodyLimit_ExactLimitPasses(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/parse-query", bytes.NewReader(bytes.Repeat([]byte("a"), 512)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		if len(b) != 512 {
			t.Errorf("expected 512 bytes, got %d", len(b))
		}
		return err
	}

	if err := BodyLimit("512")(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
