// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/store"
)

// parseID reads the numeric id route parameter. Anything that is not an id
// cannot name an item, so it is reported as NotFound.
func parseID(r *http.Request, kind hypermedia.Kind) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errNotFound("No %s with id %q", kind, raw)
	}
	return id, nil
}

func logKey(l store.Log) hypermedia.LogKey {
	return hypermedia.LogKey{ID: l.ID, Username: l.UserID.String}
}

func logFields(b *hypermedia.Builder, l store.Log) {
	b.SetField("id", l.ID)
	b.SetField("user_id", nullable(l.UserID))
	b.SetField("activity_name", nullable(l.ActivityName))
	b.SetField("activity_category", nullable(l.ActivityCategory))
	b.SetField("start_time", l.StartTime.Format(TimeLayout))
	b.SetField("end_time", l.EndTime.Format(TimeLayout))
	b.SetField("comments", nullable(l.Comments))
}

var logResource = resource[hypermedia.LogKey, store.Log]{
	name: "log",
	key: func(r *http.Request) (hypermedia.LogKey, error) {
		id, err := parseID(r, hypermedia.KindLog)
		return hypermedia.LogKey{ID: id}, err
	},
	keyOf: logKey,
	fetch: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.LogKey) (store.Log, error) {
		return u.GetLog(ctx, key.ID)
	},
	remove: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.LogKey) error {
		return u.DeleteLog(ctx, key.ID)
	},
	represent: func(b *hypermedia.Builder, l store.Log) {
		key := logKey(l)
		logFields(b, l)
		b.AddItemControls(key)
		if l.UserID.Valid {
			b.AddOwner(l.UserID.String)
		}
		if l.HasActivity() {
			b.AddActivityLink(l.ActivityCategory.String, l.ActivityName.String)
		}
		b.AddDeleteControl(key)
	},
}

var logCollection = collection[store.Log]{
	kind:       hypermedia.KindLog,
	scopeParam: "username",
	list: func(ctx context.Context, u *store.UnitOfWork, username string) ([]store.Log, error) {
		return u.ListLogsByUser(ctx, username)
	},
	item: func(b *hypermedia.Builder, l store.Log) {
		logFields(b, l)
		b.AddItemControls(logKey(l))
	},
	controls: func(b *hypermedia.Builder, username string) {
		b.AddOwner(username)
	},
}

// CreateLog handles POST /api/users/{username}/logs.
func (h *Handler) CreateLog(w http.ResponseWriter, r *http.Request) {
	username := pathParam(r, "username")

	h.create(w, r, hypermedia.KindLog, "The log already exists",
		func(ctx context.Context, u *store.UnitOfWork, b body) (hypermedia.Key, error) {
			start, err := b.requiredString("start_time")
			if err != nil {
				return nil, err
			}
			end, err := b.requiredString("end_time")
			if err != nil {
				return nil, err
			}
			activity, err := b.optionalString("activity_name")
			if err != nil {
				return nil, err
			}
			category, err := b.optionalString("activity_category")
			if err != nil {
				return nil, err
			}
			comments, err := b.optionalString("comments")
			if err != nil {
				return nil, err
			}
			if activity.Valid != category.Valid {
				return nil, errInvalid("activity_name and activity_category must be given together")
			}
			if activity.Valid {
				if err := checkKey("activity_name", activity.String); err != nil {
					return nil, err
				}
				if err := checkKey("activity_category", category.String); err != nil {
					return nil, err
				}
			}
			if err := checkText("comments", comments); err != nil {
				return nil, err
			}

			if _, err := u.GetUser(ctx, username); err != nil {
				return nil, storeError(err, "No user named "+username, "")
			}

			startTime, endTime, err := parseInterval(start, end)
			if err != nil {
				return nil, err
			}

			if activity.Valid {
				if _, err := u.GetActivity(ctx, category.String, activity.String); err != nil {
					return nil, storeError(err, "No activity "+activity.String+" in category "+category.String, "")
				}
			}

			id, err := u.CreateLog(ctx, store.CreateLogParams{
				UserID:           username,
				ActivityName:     activity,
				ActivityCategory: category,
				StartTime:        store.NewTimestamp(startTime),
				EndTime:          store.NewTimestamp(endTime),
				Comments:         comments,
			})
			return hypermedia.LogKey{ID: id, Username: username}, err
		})
}
