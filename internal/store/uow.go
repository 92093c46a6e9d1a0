// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UnitOfWork scopes one request's reads and writes to a single transaction.
// Rollback after Commit is a no-op, so callers can always defer it.
type UnitOfWork struct {
	*Queries
	tx   *sql.Tx
	done bool
}

// Begin starts a unit of work on db.
func Begin(ctx context.Context, db *sql.DB) (*UnitOfWork, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &UnitOfWork{Queries: New(db).WithTx(tx), tx: tx}, nil
}

// Commit makes the unit's writes durable. Constraint failures surfacing at
// commit time are translated like statement errors.
func (u *UnitOfWork) Commit() error {
	if u.done {
		return errors.New("unit of work already finished")
	}
	u.done = true
	return translate(u.tx.Commit())
}

// Rollback discards the unit's writes.
func (u *UnitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
