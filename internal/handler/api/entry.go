// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/mason"
)

// EntryPoint handles GET /api.
func (h *Handler) EntryPoint(w http.ResponseWriter, _ *http.Request) {
	doc := hypermedia.NewBuilder()
	doc.SetField("name", "hourlog")
	doc.AddControl(hypermedia.RelSelf, hypermedia.APIRoot)
	doc.AddCategoriesAll()
	doc.AddUsersAll()
	WriteJSON(w, http.StatusOK, doc.Document)
}

type profileField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Mutable     bool   `json:"mutable"`
	MaxLength   int    `json:"max_length,omitempty"`
	Description string `json:"description"`
}

// Profile handles GET /profiles/{profile}.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "profile")

	doc := hypermedia.NewBuilder()
	doc.SetField("profile", name)

	if name == hypermedia.ErrorProfileName {
		doc.SetField("description", "Error documents carry the request path in resource_url and "+
			"an @error object with a short @message and a list of detailed @messages.")
		doc.SetField("fields", []profileField{
			{Name: "resource_url", Type: "string", Required: true, Description: "Path of the failed request"},
			{Name: "@error", Type: "object", Required: true, Description: "Title and details of the failure"},
		})
		doc.AddControl(hypermedia.RelSelf, hypermedia.ErrorProfile)
		WriteJSON(w, http.StatusOK, doc.Document)
		return
	}

	kind, ok := hypermedia.ParseKind(name)
	if !ok {
		WriteError(w, r, "get profile", errNotFound("No profile named %q", name))
		return
	}

	fields := make([]profileField, 0)
	for _, f := range hypermedia.Fields(kind) {
		fields = append(fields, profileField{
			Name:        f.Name,
			Type:        string(f.Type),
			Required:    f.Required,
			Mutable:     f.Mutable,
			MaxLength:   f.MaxLength,
			Description: f.Description,
		})
	}
	doc.SetField("fields", fields)
	doc.SetField("editable", kind.Editable())
	doc.AddControl(hypermedia.RelSelf, hypermedia.ProfileURL(kind))
	WriteJSON(w, http.StatusOK, doc.Document)
}

type relationDoc struct {
	Name   string       `json:"name"`
	Method mason.Method `json:"method"`
	Title  string       `json:"title"`
}

// LinkRelations handles GET /hourlog/link-relations.
func (h *Handler) LinkRelations(w http.ResponseWriter, _ *http.Request) {
	rels := hypermedia.Relations()
	out := make([]relationDoc, 0, len(rels))
	for _, rel := range rels {
		out = append(out, relationDoc{Name: rel.Name, Method: rel.Method, Title: rel.Title})
	}

	doc := hypermedia.NewBuilder()
	doc.SetField("relations", out)
	doc.AddControl(hypermedia.RelSelf, hypermedia.LinkRelations)
	doc.AddControl(hypermedia.RelUp, hypermedia.APIRoot)
	WriteJSON(w, http.StatusOK, doc.Document)
}
