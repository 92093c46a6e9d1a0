// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the hypermedia REST handlers for hourlog.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/mason"
	"github.com/olegiv/hourlog-go/internal/store"
)

// TimeLayout is how timestamps appear in representations.
const TimeLayout = "2006-01-02T15:04:05.999999"

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db *sql.DB
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB) *Handler {
	return &Handler{db: db}
}

// WriteJSON writes a Mason document with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, doc *mason.Document) {
	w.Header().Set("Content-Type", mason.MediaType)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(doc)
}

// WriteCreated writes a 201 acknowledgment pointing at location.
func WriteCreated(w http.ResponseWriter, location, message string) {
	doc := mason.New()
	doc.SetField("message", message)
	doc.AddControl(hypermedia.RelSelf, location)
	w.Header().Set("Location", location)
	WriteJSON(w, http.StatusCreated, doc)
}

// WriteAck writes a 200 acknowledgment for an update or delete.
func WriteAck(w http.ResponseWriter, collection, message string) {
	doc := mason.New()
	doc.SetField("message", message)
	if collection != "" {
		doc.AddControl(hypermedia.RelCollection, collection)
	}
	WriteJSON(w, http.StatusOK, doc)
}

// WriteError writes err as a Mason error document. Errors outside the
// taxonomy are logged and answered with a plain 500.
func WriteError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		doc := hypermedia.NewErrorDocument(r.URL.Path, apiErr.Title, apiErr.Detail)
		WriteJSON(w, apiErr.Kind.Status(), doc)
		return
	}

	slog.ErrorContext(r.Context(), "request failed", "op", op, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// inUnit runs fn inside one unit of work, committing on success and
// rolling back otherwise.
func (h *Handler) inUnit(ctx context.Context, fn func(*store.UnitOfWork) error) error {
	uow, err := store.Begin(ctx, h.db)
	if err != nil {
		return err
	}
	defer func() { _ = uow.Rollback() }()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit()
}

// pathParam returns the decoded, canonical value of a route parameter.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(v); err == nil {
			v = unescaped
		}
	}
	return canonical(v)
}

func nullable(ns sql.NullString) any {
	if !ns.Valid {
		return nil
	}
	return ns.String
}
