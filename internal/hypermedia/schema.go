// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package hypermedia holds the hlog control vocabulary: entity kinds, their
// submission schemas, the address space, and a builder that attaches the
// matching controls to Mason documents.
package hypermedia

import (
	"bytes"
	"encoding/json"
)

// Kind tags one of the five entity types.
type Kind int

// Entity kinds.
const (
	KindCategory Kind = iota
	KindActivity
	KindUser
	KindLog
	KindReport
)

// Kinds lists every kind in catalog order.
var Kinds = []Kind{KindCategory, KindActivity, KindUser, KindLog, KindReport}

var kindNames = [...]string{
	KindCategory: "category",
	KindActivity: "activity",
	KindUser:     "user",
	KindLog:      "log",
	KindReport:   "report",
}

// String returns the lower-case name used in control names and profiles.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a profile name back to its kind.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Editable reports whether items of this kind accept PUT. Logs and
// reports are immutable after creation.
func (k Kind) Editable() bool {
	for _, f := range fieldRegistry[k] {
		if f.Mutable {
			return true
		}
	}
	return false
}

// FieldType is the wire type of a submitted field.
type FieldType string

// Field types.
const (
	TypeString   FieldType = "string"
	TypeInteger  FieldType = "integer"
	TypeDateTime FieldType = "datetime"
)

// Key and description column widths.
const (
	MaxKeyLength  = 32
	MaxTextLength = 128
)

// Field describes one submitted attribute of an entity.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Mutable     bool
	MaxLength   int
	Description string
}

// fieldRegistry lists the body fields of each kind in schema order. Keys
// taken from the path (an activity's category, a log's user) are not body fields.
var fieldRegistry = map[Kind][]Field{
	KindCategory: {
		{Name: "name", Type: TypeString, Required: true, MaxLength: MaxKeyLength, Description: "Category's unique name"},
		{Name: "description", Type: TypeString, Mutable: true, MaxLength: MaxTextLength, Description: "Description of the category"},
	},
	KindActivity: {
		{Name: "name", Type: TypeString, Required: true, MaxLength: MaxKeyLength, Description: "Activity's name, unique within its category"},
		{Name: "description", Type: TypeString, Mutable: true, MaxLength: MaxTextLength, Description: "Description of the activity"},
	},
	KindUser: {
		{Name: "username", Type: TypeString, Required: true, MaxLength: MaxKeyLength, Description: "User's unique name"},
		{Name: "password", Type: TypeString, Required: true, Mutable: true, MaxLength: MaxKeyLength, Description: "User's password"},
	},
	KindLog: {
		{Name: "start_time", Type: TypeDateTime, Required: true, Description: "Start of the logged activity (ISO 8601)"},
		{Name: "end_time", Type: TypeDateTime, Required: true, Description: "End of the logged activity (ISO 8601)"},
		{Name: "activity_name", Type: TypeString, MaxLength: MaxKeyLength, Description: "Name of the logged activity"},
		{Name: "activity_category", Type: TypeString, MaxLength: MaxKeyLength, Description: "Category of the logged activity"},
		{Name: "comments", Type: TypeString, MaxLength: MaxTextLength, Description: "Free-text comments"},
	},
	KindReport: {
		{Name: "start_time", Type: TypeDateTime, Required: true, Description: "Start of the reported interval (ISO 8601)"},
		{Name: "end_time", Type: TypeDateTime, Required: true, Description: "End of the reported interval (ISO 8601)"},
	},
}

// Fields returns the body fields of kind in schema order.
func Fields(kind Kind) []Field {
	return append([]Field(nil), fieldRegistry[kind]...)
}

// Schema is a JSON-schema object descriptor with ordered properties.
type Schema struct {
	Properties []Field
	Required   []string
}

// CreateSchema describes a create body for kind.
func CreateSchema(kind Kind) Schema {
	var s Schema
	for _, f := range fieldRegistry[kind] {
		s.Properties = append(s.Properties, f)
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}

// EditSchema describes an update body for kind: mutable fields only, none required.
func EditSchema(kind Kind) Schema {
	var s Schema
	for _, f := range fieldRegistry[kind] {
		if f.Mutable {
			s.Properties = append(s.Properties, f)
		}
	}
	return s
}

type property struct {
	Type        string `json:"type"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
}

func (f Field) property() property {
	p := property{Type: string(f.Type), Description: f.Description, MaxLength: f.MaxLength}
	if f.Type == TypeDateTime {
		p.Type = "string"
		p.Format = "date-time"
	}
	return p
}

// MarshalJSON renders {"type":"object","properties":{...},"required":[...]}.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"object","properties":{`)
	for i, f := range s.Properties {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		prop, err := json.Marshal(f.property())
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(prop)
	}
	buf.WriteString(`},"required":`)
	required := s.Required
	if required == nil {
		required = []string{}
	}
	req, err := json.Marshal(required)
	if err != nil {
		return nil, err
	}
	buf.Write(req)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
