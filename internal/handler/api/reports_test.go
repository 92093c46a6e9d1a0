// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReport(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/users", `{"username": "alice", "password": "pw"}`)

	loc := mustCreate(t, h, "/api/users/alice/reports",
		`{"start_time": "2024-02-07T09:00:00", "end_time": "2024-02-07T17:00:00"}`)
	assert.Regexp(t, `^/api/reports/\d+$`, loc)

	doc := decodeDoc(t, serve(t, h, http.MethodGet, loc, ""))
	assert.Equal(t, "alice", doc["user_id"])
	assert.Equal(t, "2024-02-07T09:00:00", doc["start_time"])
	assert.Equal(t, "2024-02-07T17:00:00", doc["end_time"])
	assert.Equal(t, loc, doc.href("self"))
	assert.Equal(t, "/profiles/report", doc.href("profile"))
	assert.Equal(t, "/api/users/alice/reports", doc.href("collection"))
	assert.Equal(t, "/api/users/alice", doc.href("hlog:user"))
	assert.NotNil(t, doc.control("hlog:delete-report"))
	assert.Nil(t, doc.control("hlog:edit-report"))
}

func TestCreateReportForMissingUser(t *testing.T) {
	db, h := testSetup(t)

	w := serve(t, h, http.MethodPost, "/api/users/ghost/reports",
		`{"start_time": "2024-02-07T09:00:00", "end_time": "2024-02-07T17:00:00"}`)
	assertErrorDocument(t, w, http.StatusNotFound, "/api/users/ghost/reports")

	list := decodeDoc(t, serve(t, h, http.MethodGet, "/api/users/ghost/reports", ""))
	assert.Empty(t, list.items())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM time_reports`).Scan(&n))
	assert.Zero(t, n)
}

func TestCreateReportInvalidInterval(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/users", `{"username": "alice", "password": "pw"}`)

	tests := []struct {
		name string
		body string
	}{
		{"equal", `{"start_time": "2024-02-07T09:00:00", "end_time": "2024-02-07T09:00:00"}`},
		{"reversed", `{"start_time": "2024-02-07T17:00:00", "end_time": "2024-02-07T09:00:00"}`},
		{"reversed with extra fields", `{"start_time": "2024-02-07T17:00:00", "end_time": "2024-02-07T09:00:00", "note": 1}`},
		{"bad format", `{"start_time": "07.02.2024", "end_time": "2024-02-07T09:00:00"}`},
		{"equal after truncation", `{"start_time": "2024-02-10T08:00:00.0000001", "end_time": "2024-02-10T08:00:00.0000002"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, h, http.MethodPost, "/api/users/alice/reports", tt.body)
			assertErrorDocument(t, w, http.StatusBadRequest, "/api/users/alice/reports")
		})
	}
}

func TestListReports(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/users", `{"username": "alice", "password": "pw"}`)
	mustCreate(t, h, "/api/users", `{"username": "bob", "password": "pw"}`)
	mustCreate(t, h, "/api/users/alice/reports", `{"start_time": "2024-02-07T09:00:00", "end_time": "2024-02-07T17:00:00"}`)
	mustCreate(t, h, "/api/users/alice/reports", `{"start_time": "2024-02-08T09:00:00", "end_time": "2024-02-08T17:00:00"}`)
	mustCreate(t, h, "/api/users/bob/reports", `{"start_time": "2024-02-07T14:00:00", "end_time": "2024-02-07T18:00:00"}`)

	doc := decodeDoc(t, serve(t, h, http.MethodGet, "/api/users/alice/reports", ""))
	assert.Equal(t, "/api/users/alice/reports", doc.href("self"))
	assert.Equal(t, "/api/users/alice/reports", doc.href("hlog:add-report"))

	items := doc.items()
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "alice", it["user_id"])
		assert.Regexp(t, `^/api/reports/\d+$`, it.href("self"))
	}
}

func TestDeleteReportTwice(t *testing.T) {
	_, h := testSetup(t)
	mustCreate(t, h, "/api/users", `{"username": "alice", "password": "pw"}`)
	loc := mustCreate(t, h, "/api/users/alice/reports",
		`{"start_time": "2024-02-07T09:00:00", "end_time": "2024-02-07T17:00:00"}`)

	w := serve(t, h, http.MethodDelete, loc, "")
	assertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, "/api/users/alice/reports", decodeDoc(t, w).href("collection"))

	w = serve(t, h, http.MethodDelete, loc, "")
	assertErrorDocument(t, w, http.StatusNotFound, loc)
}
