// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/store"
)

func reportKey(t store.TimeReport) hypermedia.ReportKey {
	return hypermedia.ReportKey{ID: t.ID, Username: t.UserID}
}

func reportFields(b *hypermedia.Builder, t store.TimeReport) {
	b.SetField("id", t.ID)
	b.SetField("user_id", t.UserID)
	b.SetField("start_time", t.StartTime.Format(TimeLayout))
	b.SetField("end_time", t.EndTime.Format(TimeLayout))
}

var reportResource = resource[hypermedia.ReportKey, store.TimeReport]{
	name: "report",
	key: func(r *http.Request) (hypermedia.ReportKey, error) {
		id, err := parseID(r, hypermedia.KindReport)
		return hypermedia.ReportKey{ID: id}, err
	},
	keyOf: reportKey,
	fetch: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.ReportKey) (store.TimeReport, error) {
		return u.GetReport(ctx, key.ID)
	},
	remove: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.ReportKey) error {
		return u.DeleteReport(ctx, key.ID)
	},
	represent: func(b *hypermedia.Builder, t store.TimeReport) {
		key := reportKey(t)
		reportFields(b, t)
		b.AddItemControls(key)
		b.AddOwner(t.UserID)
		b.AddDeleteControl(key)
	},
}

var reportCollection = collection[store.TimeReport]{
	kind:       hypermedia.KindReport,
	scopeParam: "username",
	list: func(ctx context.Context, u *store.UnitOfWork, username string) ([]store.TimeReport, error) {
		return u.ListReportsByUser(ctx, username)
	},
	item: func(b *hypermedia.Builder, t store.TimeReport) {
		reportFields(b, t)
		b.AddItemControls(reportKey(t))
	},
	controls: func(b *hypermedia.Builder, username string) {
		b.AddOwner(username)
	},
}

// CreateReport handles POST /api/users/{username}/reports.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	username := pathParam(r, "username")

	h.create(w, r, hypermedia.KindReport, "The report already exists",
		func(ctx context.Context, u *store.UnitOfWork, b body) (hypermedia.Key, error) {
			start, err := b.requiredString("start_time")
			if err != nil {
				return nil, err
			}
			end, err := b.requiredString("end_time")
			if err != nil {
				return nil, err
			}

			if _, err := u.GetUser(ctx, username); err != nil {
				return nil, storeError(err, "No user named "+username, "")
			}

			startTime, endTime, err := parseInterval(start, end)
			if err != nil {
				return nil, err
			}

			id, err := u.CreateReport(ctx, store.CreateReportParams{
				UserID:    username,
				StartTime: store.NewTimestamp(startTime),
				EndTime:   store.NewTimestamp(endTime),
			})
			return hypermedia.ReportKey{ID: id, Username: username}, err
		})
}
