// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/hourlog-go/internal/mason"
	"github.com/olegiv/hourlog-go/internal/store"
)

// assertStatusCode checks that the response has the expected status code.
func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("expected status %d, got %d; body: %s", expected, w.Code, w.Body.String())
	}
}

// assertErrorDocument checks status, media type and the error document shape.
func assertErrorDocument(t *testing.T, w *httptest.ResponseRecorder, status int, path string) document {
	t.Helper()
	assertStatusCode(t, w, status)
	assert.Equal(t, mason.MediaType, w.Header().Get("Content-Type"))

	doc := decodeDoc(t, w)
	assert.Equal(t, path, doc["resource_url"])
	assert.NotEmpty(t, doc.errorMessage())
	assert.Equal(t, "/profiles/error", doc.href("profile"))
	return doc
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	doc := mason.New()
	doc.SetField("key", "value")
	WriteJSON(w, http.StatusOK, doc)

	assertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, "application/vnd.mason+json", w.Header().Get("Content-Type"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "value", resp["key"])
}

func TestWriteCreated(t *testing.T) {
	w := httptest.NewRecorder()
	WriteCreated(w, "/api/categories/Work", "The category was created")

	assertStatusCode(t, w, http.StatusCreated)
	assert.Equal(t, "/api/categories/Work", w.Header().Get("Location"))

	doc := decodeDoc(t, w)
	assert.Equal(t, "The category was created", doc["message"])
	assert.Equal(t, "/api/categories/Work", doc.href("self"))
}

func TestWriteAckOmitsEmptyCollection(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAck(w, "", "The log was deleted")

	assertStatusCode(t, w, http.StatusOK)
	doc := decodeDoc(t, w)
	assert.Nil(t, doc.control("collection"))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing field", errMissingField("name"), http.StatusBadRequest},
		{"invalid", errInvalid("bad"), http.StatusBadRequest},
		{"not found", errNotFound("gone"), http.StatusNotFound},
		{"conflict", storeError(store.ErrConflict, "", "exists"), http.StatusConflict},
		{"store not found", storeError(store.ErrNotFound, "gone", ""), http.StatusNotFound},
		{"unsupported", errUnsupportedMedia(), http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/things", nil)
			w := httptest.NewRecorder()
			WriteError(w, r, "test", tt.err)
			assertErrorDocument(t, w, tt.status, "/api/things")
		})
	}
}

func TestWriteErrorUnexpected(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/things", nil)
	w := httptest.NewRecorder()
	WriteError(w, r, "test", errors.New("disk on fire"))

	assertStatusCode(t, w, http.StatusInternalServerError)
	assert.NotContains(t, w.Body.String(), "disk on fire")
	assert.NotEqual(t, mason.MediaType, w.Header().Get("Content-Type"))
}

func TestErrorKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MissingField.Status())
	assert.Equal(t, http.StatusNotFound, NotFound.Status())
	assert.Equal(t, http.StatusConflict, Conflict.Status())
	assert.Equal(t, http.StatusBadRequest, InvalidValue.Status())
	assert.Equal(t, http.StatusUnsupportedMediaType, UnsupportedMedia.Status())
	assert.Equal(t, http.StatusInternalServerError, ErrorKind(0).Status())
}

func TestStoreErrorPassesThroughOthers(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, storeError(other, "a", "b"))

	apiErr := errMissingField("x")
	assert.Same(t, apiErr, storeError(apiErr, "a", "b"))
}

func TestEntryPoint(t *testing.T) {
	_, h := testSetup(t)

	w := serve(t, h, http.MethodGet, "/api", "")
	assertStatusCode(t, w, http.StatusOK)

	doc := decodeDoc(t, w)
	assert.Equal(t, "/api/categories", doc.href("hlog:categories-all"))
	assert.Equal(t, "/api/users", doc.href("hlog:users-all"))
	ns, _ := doc["@namespaces"].(map[string]any)
	assert.Contains(t, ns, "hlog")
}

func TestProfiles(t *testing.T) {
	_, h := testSetup(t)

	for _, name := range []string{"category", "activity", "user", "log", "report", "error"} {
		t.Run(name, func(t *testing.T) {
			w := serve(t, h, http.MethodGet, "/profiles/"+name, "")
			assertStatusCode(t, w, http.StatusOK)
			doc := decodeDoc(t, w)
			assert.Equal(t, name, doc["profile"])
			assert.Equal(t, "/profiles/"+name, doc.href("self"))
			assert.NotEmpty(t, doc["fields"])
		})
	}

	w := serve(t, h, http.MethodGet, "/profiles/sensor", "")
	assertErrorDocument(t, w, http.StatusNotFound, "/profiles/sensor")
}

func TestLinkRelations(t *testing.T) {
	_, h := testSetup(t)

	w := serve(t, h, http.MethodGet, "/hourlog/link-relations", "")
	assertStatusCode(t, w, http.StatusOK)

	doc := decodeDoc(t, w)
	rels, _ := doc["relations"].([]any)
	names := map[string]bool{}
	for _, r := range rels {
		m, _ := r.(map[string]any)
		name, _ := m["name"].(string)
		names[name] = true
	}
	for _, want := range []string{
		"hlog:add-category", "hlog:edit-category", "hlog:delete-category",
		"hlog:add-activity", "hlog:edit-activity", "hlog:delete-activity",
		"hlog:add-user", "hlog:edit-user", "hlog:delete-user",
		"hlog:add-log", "hlog:delete-log",
		"hlog:add-report", "hlog:delete-report",
	} {
		assert.True(t, names[want], want)
	}
	assert.False(t, names["hlog:edit-log"])
}

func TestWriteOperationsRejectMissingBody(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work"}`)
	mustCreate(t, h, "/api/categories/Work/activities", `{"name": "Coding"}`)
	mustCreate(t, h, "/api/users", `{"username": "alice", "password": "pw"}`)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/categories"},
		{http.MethodPut, "/api/categories/Work"},
		{http.MethodPost, "/api/categories/Work/activities"},
		{http.MethodPut, "/api/categories/Work/activities/Coding"},
		{http.MethodPost, "/api/users"},
		{http.MethodPut, "/api/users/alice"},
		{http.MethodPost, "/api/users/alice/logs"},
		{http.MethodPost, "/api/users/alice/reports"},
		// Body is checked before the target.
		{http.MethodPut, "/api/users/nobody"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(t, h, tt.method, tt.path, "")
			assertErrorDocument(t, w, http.StatusUnsupportedMediaType, tt.path)
		})
	}
}

func TestWriteOperationsRejectNonJSON(t *testing.T) {
	_, h := testSetup(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{"form encoded", "application/x-www-form-urlencoded", "name=Work", http.StatusUnsupportedMediaType},
		{"text", "text/plain", `{"name":"Work"}`, http.StatusUnsupportedMediaType},
		{"no content type", "", `{"name":"Work"}`, http.StatusUnsupportedMediaType},
		{"whitespace body", "application/json", "   ", http.StatusUnsupportedMediaType},
		{"null body", "application/json", "null", http.StatusUnsupportedMediaType},
		{"malformed", "application/json", `{"name":`, http.StatusBadRequest},
		{"array", "application/json", `["Work"]`, http.StatusBadRequest},
		{"mason json", "application/vnd.mason+json", `{"name":"Work"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPost, "/api/categories", tt.body, nil)
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assertStatusCode(t, w, tt.status)
		})
	}
}
