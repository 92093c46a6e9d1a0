// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
)

const listUsers = `SELECT username, password FROM users`

// ListUsers returns every user in storage order.
func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.Password); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const getUser = `SELECT username, password FROM users WHERE username = ?`

// GetUser returns the user with the given username or ErrNotFound.
func (q *Queries) GetUser(ctx context.Context, username string) (User, error) {
	var u User
	err := q.db.QueryRowContext(ctx, getUser, username).Scan(&u.Username, &u.Password)
	return u, translate(err)
}

const createUser = `INSERT INTO users (username, password) VALUES (?, ?)`

// CreateUser inserts a user. A duplicate username yields ErrConflict.
func (q *Queries) CreateUser(ctx context.Context, arg User) error {
	_, err := q.db.ExecContext(ctx, createUser, arg.Username, arg.Password)
	return translate(err)
}

const updateUserPassword = `UPDATE users SET password = ? WHERE username = ?`

// UpdateUserPassword replaces the password of an existing user.
func (q *Queries) UpdateUserPassword(ctx context.Context, username, password string) error {
	res, err := q.db.ExecContext(ctx, updateUserPassword, password, username)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}

const deleteUser = `DELETE FROM users WHERE username = ?`

// DeleteUser removes a user. Their time reports are deleted with them,
// their logs are kept with the user reference cleared.
func (q *Queries) DeleteUser(ctx context.Context, username string) error {
	res, err := q.db.ExecContext(ctx, deleteUser, username)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}
