package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body is not valid JSON: %v", err)
	}
	return resp
}

func TestRespondWithErrorShapesBody(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		message string
	}{
		{"bad credentials", http.StatusUnauthorized, "invalid email or password"},
		{"empty cart checkout", http.StatusBadRequest, "cart is empty"},
		{"cart write failure", http.StatusInternalServerError, "failed to update cart"},
		{"login throttled", http.StatusTooManyRequests, "rate limit exceeded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithError(w, tc.status, tc.message)

			if w.Code != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %s", ct)
			}

			resp := decodeErrorBody(t, w)
			if resp.Error.Code != http.StatusText(tc.status) {
				t.Errorf("expected code %q, got %q", http.StatusText(tc.status), resp.Error.Code)
			}
			if resp.Error.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, resp.Error.Message)
			}
			if _, err := time.Parse(time.RFC3339, resp.Error.Timestamp); err != nil {
				t.Errorf("timestamp is not RFC3339: %v", err)
			}
		})
	}
}

func TestRespondWithValidationErrorsCarriesFieldDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithValidationErrors(w, []ValidationError{
		{Field: "Price", Message: "Value must be greater than 0"},
		{Field: "Category", Message: "Category must be one of: burgers, pizza, drinks, desserts, salads, sides"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	resp := decodeErrorBody(t, w)
	if resp.Error.Message != "validation failed" {
		t.Errorf("expected validation failed message, got %q", resp.Error.Message)
	}
	if _, ok := resp.Error.Details["validation_errors"]; !ok {
		t.Error("expected validation_errors in details")
	}
}

func TestErrorHandlingMiddlewareRecoversPanics(t *testing.T) {
	handler := ErrorHandlingMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("catalog lookup blew up")
	}))

	req := httptest.NewRequest("GET", "/items/3", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	resp := decodeErrorBody(t, w)
	if resp.Error.Message != "internal server error" {
		t.Errorf("panic must not leak into the response, got %q", resp.Error.Message)
	}
}

func TestRespondWithJSONWritesPayload(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"id":   13,
		"name": "Club Sandwich",
	})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["name"] != "Club Sandwich" {
		t.Errorf("payload not round-tripped: %v", body)
	}
}

func TestProperty_ErrorBodiesAlwaysParse(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// every status the storefront handlers respond with
	statuses := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusNotFound,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
	}

	properties.Property("any message yields a parseable structured body", prop.ForAll(
		func(message string, idx int) bool {
			if idx < 0 {
				idx = -idx
			}
			status := statuses[idx%len(statuses)]

			w := httptest.NewRecorder()
			RespondWithError(w, status, message)

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				return false
			}
			return w.Code == status &&
				resp.Error.Code != "" &&
				resp.Error.Message == message
		},
		gen.AnyString(),
		gen.Int(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
