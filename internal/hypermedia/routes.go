// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package hypermedia

import (
	"net/url"
	"strconv"
)

// Fixed addresses.
const (
	APIRoot          = "/api"
	CategoriesPath   = APIRoot + "/categories"
	UsersPath        = APIRoot + "/users"
	LogsPath         = APIRoot + "/logs"
	ReportsPath      = APIRoot + "/reports"
	ProfilesPath     = "/profiles"
	ErrorProfileName = "error"
	ErrorProfile     = ProfilesPath + "/" + ErrorProfileName
	LinkRelations    = "/hourlog/link-relations"
	NamespacePrefix  = "hlog"
	NamespaceURI     = LinkRelations + "#"
)

func seg(s string) string {
	return url.PathEscape(s)
}

// CategoryURL is the address of one category.
func CategoryURL(name string) string {
	return CategoriesPath + "/" + seg(name)
}

// ActivitiesURL is the activities-in-category collection.
func ActivitiesURL(category string) string {
	return CategoryURL(category) + "/activities"
}

// ActivityURL is the address of one activity.
func ActivityURL(category, name string) string {
	return ActivitiesURL(category) + "/" + seg(name)
}

// UserURL is the address of one user.
func UserURL(username string) string {
	return UsersPath + "/" + seg(username)
}

// LogsURL is the logs-by-user collection.
func LogsURL(username string) string {
	return UserURL(username) + "/logs"
}

// LogURL is the address of one log.
func LogURL(id int64) string {
	return LogsPath + "/" + strconv.FormatInt(id, 10)
}

// ReportsURL is the reports-by-user collection.
func ReportsURL(username string) string {
	return UserURL(username) + "/reports"
}

// ReportURL is the address of one time report.
func ReportURL(id int64) string {
	return ReportsPath + "/" + strconv.FormatInt(id, 10)
}

// ProfileURL is the documentation address for kind.
func ProfileURL(kind Kind) string {
	return ProfilesPath + "/" + kind.String()
}

// CollectionURL returns the list address of kind. scope is the parent key
// (category for activities, username for logs and reports) and is ignored
// for top-level kinds.
func CollectionURL(kind Kind, scope string) string {
	switch kind {
	case KindCategory:
		return CategoriesPath
	case KindActivity:
		return ActivitiesURL(scope)
	case KindUser:
		return UsersPath
	case KindLog:
		return LogsURL(scope)
	case KindReport:
		return ReportsURL(scope)
	default:
		return ""
	}
}

// Key identifies one item and knows its addresses.
type Key interface {
	Kind() Kind
	ItemURL() string
	// CollectionURL is empty when the item no longer has a parent list.
	CollectionURL() string
}

// CategoryKey keys a category.
type CategoryKey struct {
	Name string
}

func (k CategoryKey) Kind() Kind            { return KindCategory }
func (k CategoryKey) ItemURL() string       { return CategoryURL(k.Name) }
func (k CategoryKey) CollectionURL() string { return CategoriesPath }

// ActivityKey keys an activity by its category and name.
type ActivityKey struct {
	Category string
	Name     string
}

func (k ActivityKey) Kind() Kind            { return KindActivity }
func (k ActivityKey) ItemURL() string       { return ActivityURL(k.Category, k.Name) }
func (k ActivityKey) CollectionURL() string { return ActivitiesURL(k.Category) }

// UserKey keys a user.
type UserKey struct {
	Username string
}

func (k UserKey) Kind() Kind            { return KindUser }
func (k UserKey) ItemURL() string       { return UserURL(k.Username) }
func (k UserKey) CollectionURL() string { return UsersPath }

// LogKey keys a log. Username is the owner, empty once the owner is deleted.
type LogKey struct {
	ID       int64
	Username string
}

func (k LogKey) Kind() Kind      { return KindLog }
func (k LogKey) ItemURL() string { return LogURL(k.ID) }
func (k LogKey) CollectionURL() string {
	if k.Username == "" {
		return ""
	}
	return LogsURL(k.Username)
}

// ReportKey keys a time report.
type ReportKey struct {
	ID       int64
	Username string
}

func (k ReportKey) Kind() Kind            { return KindReport }
func (k ReportKey) ItemURL() string       { return ReportURL(k.ID) }
func (k ReportKey) CollectionURL() string { return ReportsURL(k.Username) }
