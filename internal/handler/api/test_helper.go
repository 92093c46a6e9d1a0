// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/hourlog-go/internal/testutil"
)

// testDB creates a migrated SQLite database in a temp dir.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	return testutil.TestDB(t)
}

// testSetup creates a test database and a router serving every API route.
func testSetup(t *testing.T) (*sql.DB, http.Handler) {
	t.Helper()
	db := testDB(t)
	r := chi.NewRouter()
	NewHandler(db).Routes(r)
	return db, r
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newJSONRequest creates an HTTP request with JSON body and optional URL params.
func newJSONRequest(t *testing.T, method, path string, body string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// executeHandler executes a handler and returns the response recorder.
func executeHandler(t *testing.T, handler func(http.ResponseWriter, *http.Request), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

// serve sends a request through the router. A non-empty body is sent as JSON.
func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = newJSONRequest(t, method, path, body, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// mustCreate POSTs body to path and fails unless the item was created.
// It returns the Location header.
func mustCreate(t *testing.T, h http.Handler, path, body string) string {
	t.Helper()
	w := serve(t, h, http.MethodPost, path, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s: status = %d, want %d; body: %s", path, w.Code, http.StatusCreated, w.Body.String())
	}
	return w.Header().Get("Location")
}

// document is a decoded Mason response.
type document map[string]any

// decodeDoc unmarshals a Mason response body.
func decodeDoc(t *testing.T, w *httptest.ResponseRecorder) document {
	t.Helper()
	var doc document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal response: %v; body: %s", err, w.Body.String())
	}
	return doc
}

// control returns the named control, or nil.
func (d document) control(name string) map[string]any {
	controls, _ := d["@controls"].(map[string]any)
	c, _ := controls[name].(map[string]any)
	return c
}

// href returns the href of the named control, or "".
func (d document) href(name string) string {
	href, _ := d.control(name)["href"].(string)
	return href
}

// items returns the list entries of a collection document.
func (d document) items() []document {
	raw, _ := d["items"].([]any)
	out := make([]document, 0, len(raw))
	for _, it := range raw {
		m, _ := it.(map[string]any)
		out = append(out, document(m))
	}
	return out
}

// errorMessage returns @error.@message, or "".
func (d document) errorMessage() string {
	e, _ := d["@error"].(map[string]any)
	msg, _ := e["@message"].(string)
	return msg
}
