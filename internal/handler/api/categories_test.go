// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	_, h := testSetup(t)

	loc := mustCreate(t, h, "/api/categories", `{"name": "Exercise", "description": "Moving around"}`)
	assert.Equal(t, "/api/categories/Exercise", loc)

	w := serve(t, h, http.MethodGet, loc, "")
	assertStatusCode(t, w, http.StatusOK)

	doc := decodeDoc(t, w)
	assert.Equal(t, "Exercise", doc["name"])
	assert.Equal(t, "Moving around", doc["description"])
	assert.Equal(t, "/api/categories/Exercise", doc.href("self"))
	assert.Equal(t, "/profiles/category", doc.href("profile"))
	assert.Equal(t, "/api/categories", doc.href("collection"))
	assert.Equal(t, "/api/categories/Exercise/activities", doc.href("hlog:activities-in"))

	edit := doc.control("hlog:edit-category")
	require.NotNil(t, edit)
	assert.Equal(t, "PUT", edit["method"])
	assert.Equal(t, "json", edit["encoding"])

	del := doc.control("hlog:delete-category")
	require.NotNil(t, del)
	assert.Equal(t, "DELETE", del["method"])
	assert.Equal(t, "/api/categories/Exercise", del["href"])
}

func TestCreateCategoryWithoutDescription(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work"}`)

	doc := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories/Work", ""))
	assert.Contains(t, doc, "description")
	assert.Nil(t, doc["description"])
}

func TestCreateCategoryConflict(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work", "description": "first"}`)

	w := serve(t, h, http.MethodPost, "/api/categories", `{"name": "Work", "description": "second"}`)
	doc := assertErrorDocument(t, w, http.StatusConflict, "/api/categories")
	assert.Equal(t, "Already exists", doc.errorMessage())

	// The first row is untouched.
	got := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories/Work", ""))
	assert.Equal(t, "first", got["description"])
}

func TestCreateCategoryValidation(t *testing.T) {
	_, h := testSetup(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"description": "x"}`},
		{"null name", `{"name": null}`},
		{"numeric name", `{"name": 42}`},
		{"empty name", `{"name": ""}`},
		{"long name", `{"name": "` + strings.Repeat("a", 33) + `"}`},
		{"numeric description", `{"name": "Work", "description": 1}`},
		{"long description", `{"name": "Work", "description": "` + strings.Repeat("d", 129) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, h, http.MethodPost, "/api/categories", tt.body)
			assertErrorDocument(t, w, http.StatusBadRequest, "/api/categories")
		})
	}

	list := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories", ""))
	assert.Empty(t, list.items())
}

func TestMissingFieldIsNamed(t *testing.T) {
	_, h := testSetup(t)

	w := serve(t, h, http.MethodPost, "/api/categories", `{"description": "x"}`)
	doc := decodeDoc(t, w)
	e, _ := doc["@error"].(map[string]any)
	msgs, _ := e["@messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], `"name"`)
}

func TestListCategories(t *testing.T) {
	_, h := testSetup(t)

	empty := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories", ""))
	assert.NotNil(t, empty["items"])
	assert.Empty(t, empty.items())

	mustCreate(t, h, "/api/categories", `{"name": "Work"}`)
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)

	w := serve(t, h, http.MethodGet, "/api/categories", "")
	assertStatusCode(t, w, http.StatusOK)

	doc := decodeDoc(t, w)
	assert.Equal(t, "/api/categories", doc.href("self"))
	add := doc.control("hlog:add-category")
	require.NotNil(t, add)
	assert.Equal(t, "POST", add["method"])
	assert.Equal(t, "/api/categories", add["href"])
	schema, _ := add["schema"].(map[string]any)
	assert.Equal(t, []any{"name"}, schema["required"])

	items := doc.items()
	require.Len(t, items, 2)
	names := []any{items[0]["name"], items[1]["name"]}
	assert.ElementsMatch(t, []any{"Work", "Exercise"}, names)
	for _, it := range items {
		assert.Equal(t, "/api/categories/"+it["name"].(string), it.href("self"))
	}
}

func TestUpdateCategory(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work", "description": "old"}`)

	w := serve(t, h, http.MethodPut, "/api/categories/Work", `{"name": "Renamed", "description": "new"}`)
	assertStatusCode(t, w, http.StatusOK)
	ack := decodeDoc(t, w)
	assert.Equal(t, "/api/categories", ack.href("collection"))

	doc := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories/Work", ""))
	assert.Equal(t, "Work", doc["name"])
	assert.Equal(t, "new", doc["description"])

	// Absent field is a no-op.
	w = serve(t, h, http.MethodPut, "/api/categories/Work", `{}`)
	assertStatusCode(t, w, http.StatusOK)
	doc = decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories/Work", ""))
	assert.Equal(t, "new", doc["description"])

	// Same value again still succeeds.
	w = serve(t, h, http.MethodPut, "/api/categories/Work", `{"description": "new"}`)
	assertStatusCode(t, w, http.StatusOK)
}

func TestUpdateCategoryErrors(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work"}`)

	w := serve(t, h, http.MethodPut, "/api/categories/Nope", `{"description": "x"}`)
	assertErrorDocument(t, w, http.StatusNotFound, "/api/categories/Nope")

	w = serve(t, h, http.MethodPut, "/api/categories/Nope", `{}`)
	assertErrorDocument(t, w, http.StatusNotFound, "/api/categories/Nope")

	w = serve(t, h, http.MethodPut, "/api/categories/Work", `{"description": 5}`)
	assertErrorDocument(t, w, http.StatusBadRequest, "/api/categories/Work")
}

func TestDeleteCategoryTwice(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work"}`)

	w := serve(t, h, http.MethodDelete, "/api/categories/Work", "")
	assertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, "/api/categories", decodeDoc(t, w).href("collection"))

	w = serve(t, h, http.MethodDelete, "/api/categories/Work", "")
	assertErrorDocument(t, w, http.StatusNotFound, "/api/categories/Work")

	w = serve(t, h, http.MethodGet, "/api/categories/Work", "")
	assertErrorDocument(t, w, http.StatusNotFound, "/api/categories/Work")
}

func TestDeleteCategoryCascadesToActivities(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)
	mustCreate(t, h, "/api/categories/Exercise/activities", `{"name": "Yoga"}`)
	mustCreate(t, h, "/api/categories/Exercise/activities", `{"name": "Gym"}`)

	w := serve(t, h, http.MethodDelete, "/api/categories/Exercise", "")
	assertStatusCode(t, w, http.StatusOK)

	for _, name := range []string{"Yoga", "Gym"} {
		path := "/api/categories/Exercise/activities/" + name
		w := serve(t, h, http.MethodGet, path, "")
		assertErrorDocument(t, w, http.StatusNotFound, path)
	}

	// Recreating the category starts with no activities.
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)
	list := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories/Exercise/activities", ""))
	assert.Empty(t, list.items())
}

func TestCategoryNamesAreEscaped(t *testing.T) {
	_, h := testSetup(t)

	loc := mustCreate(t, h, "/api/categories", `{"name": "Deep Work"}`)
	assert.Equal(t, "/api/categories/Deep%20Work", loc)

	w := serve(t, h, http.MethodGet, loc, "")
	assertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, "Deep Work", decodeDoc(t, w)["name"])

	loc = mustCreate(t, h, "/api/categories", `{"name": "a/b"}`)
	assert.Equal(t, "/api/categories/a%2Fb", loc)
	w = serve(t, h, http.MethodGet, loc, "")
	assertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, "a/b", decodeDoc(t, w)["name"])
}

func TestCategoryNamesAreStoredComposed(t *testing.T) {
	db, h := testSetup(t)

	// 32 characters once composed, 64 code points as sent.
	decomposed := strings.Repeat("e\u0301", 32)
	composed := strings.Repeat("\u00e9", 32)

	loc := mustCreate(t, h, "/api/categories", `{"name": "`+strings.Repeat(`e\u0301`, 32)+`"}`)
	assert.Equal(t, "/api/categories/"+url.PathEscape(composed), loc)

	var stored string
	require.NoError(t, db.QueryRow(`SELECT name FROM categories`).Scan(&stored))
	assert.Equal(t, composed, stored)

	w := serve(t, h, http.MethodGet, "/api/categories/"+url.PathEscape(decomposed), "")
	assertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, composed, decodeDoc(t, w)["name"])

	w = serve(t, h, http.MethodPost, "/api/categories", `{"name": "`+strings.Repeat(`e\u0301`, 33)+`"}`)
	assertErrorDocument(t, w, http.StatusBadRequest, "/api/categories")
}
