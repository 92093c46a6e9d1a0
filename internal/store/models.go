// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"
)

// User owns logs (set null on delete) and time reports (cascade).
type User struct {
	Username string
	Password string
}

// Category groups activities. Deleting one cascades to its activities.
type Category struct {
	Name        string
	Description sql.NullString
}

// Activity is keyed by (Name, CategoryName).
type Activity struct {
	Name         string
	CategoryName string
	Description  sql.NullString
}

// Log is one time-boxed activity record.
type Log struct {
	ID               int64
	UserID           sql.NullString
	ActivityName     sql.NullString
	ActivityCategory sql.NullString
	StartTime        Timestamp
	EndTime          Timestamp
	Comments         sql.NullString
}

// HasActivity reports whether both parts of the activity reference are set.
func (l Log) HasActivity() bool {
	return l.ActivityName.Valid && l.ActivityCategory.Valid
}

// TimeReport is an aggregate interval owned by a user.
type TimeReport struct {
	ID        int64
	UserID    string
	StartTime Timestamp
	EndTime   Timestamp
}

// TimestampLayout is the storage format for Timestamp values. It is
// accepted by both SQLite date functions and MySQL DATETIME(6).
const TimestampLayout = "2006-01-02 15:04:05.999999"

// Timestamp is an instant stored as UTC wall-clock time without zone.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalizes t to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format(TimestampLayout), nil
}

// scanLayouts covers what the drivers hand back for DATETIME columns.
var scanLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		return fmt.Errorf("scanning timestamp: NULL value")
	default:
		return fmt.Errorf("scanning timestamp: unsupported type %T", src)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range scanLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("scanning timestamp: unrecognized format %q", s)
}
