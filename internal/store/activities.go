// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
)

const listActivitiesByCategory = `SELECT name, category_name, description FROM activities WHERE category_name = ?`

// ListActivitiesByCategory returns the activities of one category.
// An unknown category yields an empty slice.
func (q *Queries) ListActivitiesByCategory(ctx context.Context, category string) ([]Activity, error) {
	rows, err := q.db.QueryContext(ctx, listActivitiesByCategory, category)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Name, &a.CategoryName, &a.Description); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

const getActivity = `SELECT name, category_name, description FROM activities WHERE category_name = ? AND name = ?`

// GetActivity returns the activity keyed by (category, name) or ErrNotFound.
func (q *Queries) GetActivity(ctx context.Context, category, name string) (Activity, error) {
	var a Activity
	err := q.db.QueryRowContext(ctx, getActivity, category, name).Scan(&a.Name, &a.CategoryName, &a.Description)
	return a, translate(err)
}

const createActivity = `INSERT INTO activities (name, category_name, description) VALUES (?, ?, ?)`

// CreateActivityParams holds the insert values for an activity.
type CreateActivityParams struct {
	Name         string
	CategoryName string
	Description  sql.NullString
}

// CreateActivity inserts an activity. A duplicate (name, category) yields ErrConflict.
func (q *Queries) CreateActivity(ctx context.Context, arg CreateActivityParams) error {
	_, err := q.db.ExecContext(ctx, createActivity, arg.Name, arg.CategoryName, arg.Description)
	return translate(err)
}

const updateActivity = `UPDATE activities SET description = ? WHERE category_name = ? AND name = ?`

// UpdateActivityParams holds the mutable fields of an activity.
type UpdateActivityParams struct {
	Name         string
	CategoryName string
	Description  sql.NullString
}

// UpdateActivity rewrites the description of an existing activity.
func (q *Queries) UpdateActivity(ctx context.Context, arg UpdateActivityParams) error {
	res, err := q.db.ExecContext(ctx, updateActivity, arg.Description, arg.CategoryName, arg.Name)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}

const deleteActivity = `DELETE FROM activities WHERE category_name = ? AND name = ?`

// DeleteActivity removes an activity; logs referencing it keep their row
// with the activity reference cleared.
func (q *Queries) DeleteActivity(ctx context.Context, category, name string) error {
	res, err := q.db.ExecContext(ctx, deleteActivity, category, name)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}
