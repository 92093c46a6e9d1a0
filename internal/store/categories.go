// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
)

const listCategories = `SELECT name, description FROM categories`

// ListCategories returns every category in storage order.
func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, listCategories)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const getCategory = `SELECT name, description FROM categories WHERE name = ?`

// GetCategory returns the category with the given name or ErrNotFound.
func (q *Queries) GetCategory(ctx context.Context, name string) (Category, error) {
	var c Category
	err := q.db.QueryRowContext(ctx, getCategory, name).Scan(&c.Name, &c.Description)
	return c, translate(err)
}

const createCategory = `INSERT INTO categories (name, description) VALUES (?, ?)`

// CreateCategoryParams holds the insert values for a category.
type CreateCategoryParams struct {
	Name        string
	Description sql.NullString
}

// CreateCategory inserts a category. A duplicate name yields ErrConflict.
func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) error {
	_, err := q.db.ExecContext(ctx, createCategory, arg.Name, arg.Description)
	return translate(err)
}

const updateCategory = `UPDATE categories SET description = ? WHERE name = ?`

// UpdateCategoryParams holds the mutable fields of a category.
type UpdateCategoryParams struct {
	Name        string
	Description sql.NullString
}

// UpdateCategory rewrites the description of an existing category.
func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) error {
	res, err := q.db.ExecContext(ctx, updateCategory, arg.Description, arg.Name)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}

const deleteCategory = `DELETE FROM categories WHERE name = ?`

// DeleteCategory removes a category; its activities go with it.
func (q *Queries) DeleteCategory(ctx context.Context, name string) error {
	res, err := q.db.ExecContext(ctx, deleteCategory, name)
	if err != nil {
		return translate(err)
	}
	return requireAffected(res)
}

const countCategories = `SELECT COUNT(*) FROM categories`

// CountCategories returns the number of categories.
func (q *Queries) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countCategories).Scan(&n)
	return n, err
}
