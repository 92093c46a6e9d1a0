// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mason builds Mason hypermedia documents: JSON objects carrying
// entity attributes alongside reserved @namespaces, @controls and @error
// entries.
package mason

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MediaType is the content type of every Mason document.
const MediaType = "application/vnd.mason+json"

// Key is a reserved document key.
type Key string

// Reserved keys. Attribute names must not start with "@".
const (
	KeyNamespaces Key = "@namespaces"
	KeyControls   Key = "@controls"
	KeyError      Key = "@error"
)

// Method is the HTTP method a control submits with.
type Method string

// Control methods.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Control describes one available transition.
type Control struct {
	Href           string `json:"href"`
	Method         Method `json:"method,omitempty"`
	Encoding       string `json:"encoding,omitempty"`
	Title          string `json:"title,omitempty"`
	Schema         any    `json:"schema,omitempty"`
	IsHrefTemplate bool   `json:"isHrefTemplate,omitempty"`
}

// ControlOption sets an optional control attribute.
type ControlOption func(*Control)

// WithMethod sets the submission method.
func WithMethod(m Method) ControlOption {
	return func(c *Control) { c.Method = m }
}

// WithEncoding sets the request body encoding, e.g. "json".
func WithEncoding(enc string) ControlOption {
	return func(c *Control) { c.Encoding = enc }
}

// WithTitle sets a human-readable title.
func WithTitle(title string) ControlOption {
	return func(c *Control) { c.Title = title }
}

// WithSchema attaches a submission schema.
func WithSchema(schema any) ControlOption {
	return func(c *Control) { c.Schema = schema }
}

// WithHrefTemplate marks href as a URI template.
func WithHrefTemplate() ControlOption {
	return func(c *Control) { c.IsHrefTemplate = true }
}

// Namespace maps a control-name prefix to its documentation URI.
type Namespace struct {
	Name string `json:"name"`
}

// Error is the body of the @error entry.
type Error struct {
	Message  string   `json:"@message"`
	Messages []string `json:"@messages"`
}

// ordered is a string-keyed map that remembers insertion order.
type ordered[V any] struct {
	keys   []string
	values map[string]V
}

func newOrdered[V any]() *ordered[V] {
	return &ordered[V]{values: make(map[string]V)}
}

func (o *ordered[V]) set(key string, v V) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *ordered[V]) get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is an ordered Mason document. The zero value is not usable; call New.
type Document struct {
	fields *ordered[any]
}

// New returns an empty document.
func New() *Document {
	return &Document{fields: newOrdered[any]()}
}

// SetField sets a free-form attribute. It panics on reserved "@" keys.
func (d *Document) SetField(key string, value any) {
	if strings.HasPrefix(key, "@") {
		panic(fmt.Sprintf("mason: attribute %q uses the reserved @ prefix", key))
	}
	d.fields.set(key, value)
}

// AddNamespace declares prefix. Redeclaring a prefix replaces its URI.
func (d *Document) AddNamespace(prefix, uri string) {
	d.namespaces().set(prefix, Namespace{Name: uri})
}

// AddControl adds or replaces the control called name.
func (d *Document) AddControl(name, href string, opts ...ControlOption) {
	c := Control{Href: href}
	for _, opt := range opts {
		opt(&c)
	}
	d.controls().set(name, c)
}

// AddError sets the @error entry.
func (d *Document) AddError(title, detail string) {
	d.fields.set(string(KeyError), Error{Message: title, Messages: []string{detail}})
}

// Get returns the value stored under key, reserved keys included.
func (d *Document) Get(key string) (any, bool) {
	return d.fields.get(key)
}

// Keys returns the top-level keys in insertion order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.fields.keys...)
}

// Control returns the control called name.
func (d *Document) Control(name string) (Control, bool) {
	v, ok := d.fields.get(string(KeyControls))
	if !ok {
		return Control{}, false
	}
	return v.(*ordered[Control]).get(name)
}

// Namespace returns the URI declared for prefix.
func (d *Document) Namespace(prefix string) (string, bool) {
	v, ok := d.fields.get(string(KeyNamespaces))
	if !ok {
		return "", false
	}
	ns, ok := v.(*ordered[Namespace]).get(prefix)
	return ns.Name, ok
}

// MarshalJSON encodes the document with keys in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.fields.MarshalJSON()
}

func (d *Document) namespaces() *ordered[Namespace] {
	if v, ok := d.fields.get(string(KeyNamespaces)); ok {
		return v.(*ordered[Namespace])
	}
	ns := newOrdered[Namespace]()
	d.fields.set(string(KeyNamespaces), ns)
	return ns
}

func (d *Document) controls() *ordered[Control] {
	if v, ok := d.fields.get(string(KeyControls)); ok {
		return v.(*ordered[Control])
	}
	cs := newOrdered[Control]()
	d.fields.set(string(KeyControls), cs)
	return cs
}
