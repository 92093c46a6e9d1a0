// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
)

const logColumns = `id, user_id, activity_name, activity_category, start_time, end_time, comments`

func scanLog(row interface{ Scan(...any) error }) (Log, error) {
	var l Log
	err := row.Scan(&l.ID, &l.UserID, &l.ActivityName, &l.ActivityCategory, &l.StartTime, &l.EndTime, &l.Comments)
	return l, err
}

const listLogsByUser = `SELECT ` + logColumns + ` FROM logs WHERE user_id = ? ORDER BY id`

// ListLogsByUser returns the logs owned by username.
func (q *Queries) ListLogsByUser(ctx context.Context, username string) ([]Log, error) {
	rows, err := q.db.QueryContext(ctx, listLogsByUser, username)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []Log{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning log: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

const getLog = `SELECT ` + logColumns + ` FROM logs WHERE id = ?`

// GetLog returns the log with the given id or ErrNotFound.
func (q *Queries) GetLog(ctx context.Context, id int64) (Log, error) {
	l, err := scanLog(q.db.QueryRowContext(ctx, getLog, id))
	return l, translate(err)
}

const createLog = `INSERT INTO logs (user_id, activity_name, activity_category, start_time, end_time, comments)
VALUES (?, ?, ?, ?, ?, ?)`

// CreateLogParams holds the insert values for a log.
type CreateLogParams struct {
	UserID           string
	ActivityName     sql.NullString
	ActivityCategory sql.NullString
	StartTime        Timestamp
	EndTime          Timestamp
	Comments         sql.NullString
}

// CreateLog inserts a log and returns its generated id.
func (q *Queries) CreateLog(ctx context.Context, arg CreateLogParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createLog,
		arg.UserID,
		arg.ActivityName,
		arg.ActivityCategory,
		arg.StartTime,
		arg.EndTime,
		arg.Comments,
	)
	if err != nil {
		return 0, translate(err)
	}
	return res.LastInsertId()
}

const deleteLog = `DELETE FROM logs WHERE id = ?`

// DeleteLog removes a log.
func (q *Queries) DeleteLog(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, deleteLog, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}
