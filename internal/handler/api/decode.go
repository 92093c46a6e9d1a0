// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
)

// maxBodySize caps request bodies.
const maxBodySize = 1 << 20

// body is a decoded JSON object whose fields are extracted lazily so each
// failure can name the offending field.
type body map[string]json.RawMessage

// isJSONMediaType accepts application/json and any +json suffix type.
func isJSONMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// decodeBody enforces the write preconditions on the request body: a JSON
// media type and a non-empty payload (415), then a well-formed JSON object (400).
func decodeBody(r *http.Request) (body, error) {
	if !isJSONMediaType(r.Header.Get("Content-Type")) {
		return nil, errUnsupportedMedia()
	}
	if r.Body == nil {
		return nil, errUnsupportedMedia()
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, errInvalid("Could not read request body")
	}
	if len(raw) > maxBodySize {
		return nil, errInvalid("Request body is too large")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errUnsupportedMedia()
	}

	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, errInvalid("Request body is not a valid JSON object")
	}
	if b == nil {
		// Literal null.
		return nil, errUnsupportedMedia()
	}
	return b, nil
}

// has reports whether field is present with a non-null value.
func (b body) has(field string) bool {
	raw, ok := b[field]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// requiredString extracts a mandatory string field.
func (b body) requiredString(field string) (string, error) {
	if !b.has(field) {
		return "", errMissingField(field)
	}
	var s string
	if err := json.Unmarshal(b[field], &s); err != nil {
		return "", errInvalid("Field %q must be a string", field)
	}
	return canonical(s), nil
}

// optionalString extracts a string field that may be absent or null.
func (b body) optionalString(field string) (sql.NullString, error) {
	if !b.has(field) {
		return sql.NullString{}, nil
	}
	var s string
	if err := json.Unmarshal(b[field], &s); err != nil {
		return sql.NullString{}, errInvalid("Field %q must be a string", field)
	}
	return sql.NullString{String: canonical(s), Valid: true}, nil
}

// checkKey validates a user-chosen key: non-empty and within the key width.
func checkKey(field, value string) error {
	if value == "" {
		return errInvalid("Field %q must not be empty", field)
	}
	return checkLength(field, value, hypermedia.MaxKeyLength)
}

// canonical returns the NFC form, which is what gets stored and compared.
func canonical(s string) string {
	return norm.NFC.String(s)
}

// checkLength compares the character count of value with max. Values reach
// it already canonical, so the count matches the stored column.
func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return errInvalid("Field %q must be at most %d characters", field, max)
	}
	return nil
}

// checkText validates an optional free-text field.
func checkText(field string, value sql.NullString) error {
	if !value.Valid {
		return nil
	}
	return checkLength(field, value.String, hypermedia.MaxTextLength)
}

// timestampLayouts are the ISO-8601 shapes accepted on input. Values
// without an offset are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp parses an ISO-8601 timestamp and normalizes it to UTC.
func parseTimestamp(field, value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			// Stored precision is microseconds.
			return t.UTC().Truncate(time.Microsecond), nil
		}
	}
	return time.Time{}, errInvalid("Field %q is not an ISO 8601 timestamp: %q", field, value)
}

// parseInterval parses start and end and requires start < end.
func parseInterval(start, end string) (time.Time, time.Time, error) {
	s, err := parseTimestamp("start_time", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := parseTimestamp("end_time", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !s.Before(e) {
		return time.Time{}, time.Time{}, errInvalid("start_time must be before end_time")
	}
	return s, e, nil
}
