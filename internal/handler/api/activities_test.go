// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateActivity(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)

	loc := mustCreate(t, h, "/api/categories/Exercise/activities", `{"name": "Yoga", "description": "Stretching"}`)
	assert.Equal(t, "/api/categories/Exercise/activities/Yoga", loc)

	doc := decodeDoc(t, serve(t, h, http.MethodGet, loc, ""))
	assert.Equal(t, "Yoga", doc["name"])
	assert.Equal(t, "Exercise", doc["category"])
	assert.Equal(t, "Stretching", doc["description"])
	assert.Equal(t, loc, doc.href("self"))
	assert.Equal(t, "/profiles/activity", doc.href("profile"))
	assert.Equal(t, "/api/categories/Exercise/activities", doc.href("collection"))
	assert.Equal(t, "/api/categories/Exercise", doc.href("up"))
	assert.NotNil(t, doc.control("hlog:edit-activity"))
	assert.NotNil(t, doc.control("hlog:delete-activity"))
}

func TestCreateActivityMissingCategory(t *testing.T) {
	db, h := testSetup(t)

	w := serve(t, h, http.MethodPost, "/api/categories/Nope/activities", `{"name": "Yoga"}`)
	assertErrorDocument(t, w, http.StatusNotFound, "/api/categories/Nope/activities")

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&n))
	assert.Zero(t, n)
}

func TestCreateActivityFieldErrorsComeBeforeParentCheck(t *testing.T) {
	_, h := testSetup(t)

	w := serve(t, h, http.MethodPost, "/api/categories/Nope/activities", `{"description": "x"}`)
	assertErrorDocument(t, w, http.StatusBadRequest, "/api/categories/Nope/activities")
}

func TestCreateActivityConflict(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work"}`)
	mustCreate(t, h, "/api/categories", `{"name": "Home"}`)
	mustCreate(t, h, "/api/categories/Work/activities", `{"name": "Planning"}`)

	w := serve(t, h, http.MethodPost, "/api/categories/Work/activities", `{"name": "Planning"}`)
	assertErrorDocument(t, w, http.StatusConflict, "/api/categories/Work/activities")

	// Same name in another category is a different activity.
	mustCreate(t, h, "/api/categories/Home/activities", `{"name": "Planning"}`)
}

func TestCreateActivityDirect(t *testing.T) {
	db := testDB(t)
	h := NewHandler(db)

	req := newJSONRequest(t, http.MethodPost, "/api/categories/Work/activities", `{"name": "Coding"}`,
		map[string]string{"category": "Work"})
	w := executeHandler(t, h.CreateActivity, req)
	assertErrorDocument(t, w, http.StatusNotFound, "/api/categories/Work/activities")

	_, err := db.Exec(`INSERT INTO categories (name) VALUES ('Work')`)
	require.NoError(t, err)

	req = newJSONRequest(t, http.MethodPost, "/api/categories/Work/activities", `{"name": "Coding"}`,
		map[string]string{"category": "Work"})
	w = executeHandler(t, h.CreateActivity, req)
	assertStatusCode(t, w, http.StatusCreated)
	assert.Equal(t, "/api/categories/Work/activities/Coding", w.Header().Get("Location"))
}

func TestUpdateActivityDescriptionOnly(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)
	mustCreate(t, h, "/api/categories/Exercise/activities", `{"name": "Yoga", "description": "old"}`)

	w := serve(t, h, http.MethodPut, "/api/categories/Exercise/activities/Yoga", `{"description": "new"}`)
	assertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, "/api/categories/Exercise/activities", decodeDoc(t, w).href("collection"))

	doc := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories/Exercise/activities/Yoga", ""))
	assert.Equal(t, "Yoga", doc["name"])
	assert.Equal(t, "Exercise", doc["category"])
	assert.Equal(t, "new", doc["description"])
}

func TestUpdateActivityNotFound(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)

	path := "/api/categories/Exercise/activities/Nope"
	w := serve(t, h, http.MethodPut, path, `{"description": "new"}`)
	assertErrorDocument(t, w, http.StatusNotFound, path)
}

func TestListActivitiesScopedToCategory(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Work"}`)
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)
	mustCreate(t, h, "/api/categories/Work/activities", `{"name": "Coding"}`)
	mustCreate(t, h, "/api/categories/Exercise/activities", `{"name": "Yoga"}`)
	mustCreate(t, h, "/api/categories/Exercise/activities", `{"name": "Gym"}`)

	w := serve(t, h, http.MethodGet, "/api/categories/Exercise/activities", "")
	assertStatusCode(t, w, http.StatusOK)

	doc := decodeDoc(t, w)
	assert.Equal(t, "/api/categories/Exercise/activities", doc.href("self"))
	assert.Equal(t, "/api/categories/Exercise/activities", doc.href("hlog:add-activity"))
	assert.Equal(t, "/api/categories/Exercise", doc.href("up"))

	items := doc.items()
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "Exercise", it["category"])
	}

	unknown := decodeDoc(t, serve(t, h, http.MethodGet, "/api/categories/Nope/activities", ""))
	assert.Empty(t, unknown.items())
}

func TestDeleteActivityKeepsLogs(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/categories", `{"name": "Exercise"}`)
	mustCreate(t, h, "/api/categories/Exercise/activities", `{"name": "Yoga"}`)
	mustCreate(t, h, "/api/users", `{"username": "alice", "password": "pw"}`)
	logURL := mustCreate(t, h, "/api/users/alice/logs", `{
		"start_time": "2024-02-10T08:00:00", "end_time": "2024-02-10T09:00:00",
		"activity_name": "Yoga", "activity_category": "Exercise"}`)

	w := serve(t, h, http.MethodDelete, "/api/categories/Exercise/activities/Yoga", "")
	assertStatusCode(t, w, http.StatusOK)

	w = serve(t, h, http.MethodDelete, "/api/categories/Exercise/activities/Yoga", "")
	assertErrorDocument(t, w, http.StatusNotFound, "/api/categories/Exercise/activities/Yoga")

	doc := decodeDoc(t, serve(t, h, http.MethodGet, logURL, ""))
	assert.Nil(t, doc["activity_name"])
	assert.Nil(t, doc["activity_category"])
	assert.Equal(t, "alice", doc["user_id"])
	assert.Nil(t, doc.control("hlog:activity"))
}
