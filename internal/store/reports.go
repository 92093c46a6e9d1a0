// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
)

const listReportsByUser = `SELECT id, user_id, start_time, end_time FROM time_reports WHERE user_id = ? ORDER BY id`

// ListReportsByUser returns the time reports owned by username.
func (q *Queries) ListReportsByUser(ctx context.Context, username string) ([]TimeReport, error) {
	rows, err := q.db.QueryContext(ctx, listReportsByUser, username)
	if err != nil {
		return nil, fmt.Errorf("listing time reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []TimeReport{}
	for rows.Next() {
		var r TimeReport
		if err := rows.Scan(&r.ID, &r.UserID, &r.StartTime, &r.EndTime); err != nil {
			return nil, fmt.Errorf("scanning time report: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getReport = `SELECT id, user_id, start_time, end_time FROM time_reports WHERE id = ?`

// GetReport returns the time report with the given id or ErrNotFound.
func (q *Queries) GetReport(ctx context.Context, id int64) (TimeReport, error) {
	var r TimeReport
	err := q.db.QueryRowContext(ctx, getReport, id).Scan(&r.ID, &r.UserID, &r.StartTime, &r.EndTime)
	return r, translate(err)
}

const createReport = `INSERT INTO time_reports (user_id, start_time, end_time) VALUES (?, ?, ?)`

// CreateReportParams holds the insert values for a time report.
type CreateReportParams struct {
	UserID    string
	StartTime Timestamp
	EndTime   Timestamp
}

// CreateReport inserts a time report and returns its generated id.
func (q *Queries) CreateReport(ctx context.Context, arg CreateReportParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createReport, arg.UserID, arg.StartTime, arg.EndTime)
	if err != nil {
		return 0, translate(err)
	}
	return res.LastInsertId()
}

const deleteReport = `DELETE FROM time_reports WHERE id = ?`

// DeleteReport removes a time report.
func (q *Queries) DeleteReport(ctx context.Context, id int64) error {
	res, err := q.db.ExecContext(ctx, deleteReport, id)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}
