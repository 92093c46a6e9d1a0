// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/store"
)

func userFields(b *hypermedia.Builder, u store.User) {
	b.SetField("username", u.Username)
	b.SetField("password", u.Password)
}

var userResource = resource[hypermedia.UserKey, store.User]{
	name: "user",
	key: func(r *http.Request) (hypermedia.UserKey, error) {
		return hypermedia.UserKey{Username: pathParam(r, "username")}, nil
	},
	keyOf: func(u store.User) hypermedia.UserKey {
		return hypermedia.UserKey{Username: u.Username}
	},
	fetch: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.UserKey) (store.User, error) {
		return u.GetUser(ctx, key.Username)
	},
	remove: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.UserKey) error {
		return u.DeleteUser(ctx, key.Username)
	},
	represent: func(b *hypermedia.Builder, usr store.User) {
		key := hypermedia.UserKey{Username: usr.Username}
		userFields(b, usr)
		b.AddItemControls(key)
		b.AddLogsBy(usr.Username)
		b.AddReportsBy(usr.Username)
		b.AddEditControl(key)
		b.AddDeleteControl(key)
	},
	update: func(ctx context.Context, u *store.UnitOfWork, key hypermedia.UserKey, b body) error {
		pw, err := b.optionalString("password")
		if err != nil {
			return err
		}
		if !pw.Valid {
			_, err := u.GetUser(ctx, key.Username)
			return err
		}
		if err := checkLength("password", pw.String, hypermedia.MaxKeyLength); err != nil {
			return err
		}
		return u.UpdateUserPassword(ctx, key.Username, pw.String)
	},
}

var userCollection = collection[store.User]{
	kind: hypermedia.KindUser,
	list: func(ctx context.Context, u *store.UnitOfWork, _ string) ([]store.User, error) {
		return u.ListUsers(ctx)
	},
	item: func(b *hypermedia.Builder, usr store.User) {
		userFields(b, usr)
		b.AddItemControls(hypermedia.UserKey{Username: usr.Username})
	},
	controls: func(b *hypermedia.Builder, _ string) {
		b.AddCategoriesAll()
	},
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, hypermedia.KindUser, "A user with this username already exists",
		func(ctx context.Context, u *store.UnitOfWork, b body) (hypermedia.Key, error) {
			username, err := b.requiredString("username")
			if err != nil {
				return nil, err
			}
			password, err := b.requiredString("password")
			if err != nil {
				return nil, err
			}
			if err := checkKey("username", username); err != nil {
				return nil, err
			}
			if err := checkLength("password", password, hypermedia.MaxKeyLength); err != nil {
				return nil, err
			}

			err = u.CreateUser(ctx, store.User{Username: username, Password: password})
			return hypermedia.UserKey{Username: username}, err
		})
}
