// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package hypermedia

import (
	"github.com/olegiv/hourlog-go/internal/mason"
)

// Navigation link relations.
const (
	RelSelf          = "self"
	RelProfile       = "profile"
	RelCollection    = "collection"
	RelUp            = "up"
	RelActivitiesIn  = "hlog:activities-in"
	RelLogsBy        = "hlog:logs-by"
	RelReportsBy     = "hlog:reports-by"
	RelUser          = "hlog:user"
	RelActivity      = "hlog:activity"
	RelCategoriesAll = "hlog:categories-all"
	RelUsersAll      = "hlog:users-all"
)

// encodingJSON is the body encoding of every write control.
const encodingJSON = "json"

// AddRel, EditRel and DeleteRel name the write controls of kind.
func AddRel(kind Kind) string    { return NamespacePrefix + ":add-" + kind.String() }
func EditRel(kind Kind) string   { return NamespacePrefix + ":edit-" + kind.String() }
func DeleteRel(kind Kind) string { return NamespacePrefix + ":delete-" + kind.String() }

var addTitles = map[Kind]string{
	KindCategory: "Add a new category",
	KindActivity: "Add a new activity for this category",
	KindUser:     "Add a new user",
	KindLog:      "Add a new log for this user",
	KindReport:   "Add a new report for this user",
}

var editTitles = map[Kind]string{
	KindCategory: "Edit this category",
	KindActivity: "Edit this activity",
	KindUser:     "Edit this user",
}

var deleteTitles = map[Kind]string{
	KindCategory: "Delete this category",
	KindActivity: "Delete this activity",
	KindUser:     "Delete this user",
	KindLog:      "Delete this log",
	KindReport:   "Delete this report",
}

var navTitles = map[string]string{
	RelActivitiesIn:  "Activities in this category",
	RelLogsBy:        "Logs recorded by this user",
	RelReportsBy:     "Time reports of this user",
	RelUser:          "Owner of this item",
	RelActivity:      "The logged activity",
	RelCategoriesAll: "All categories",
	RelUsersAll:      "All users",
}

// Relation is one entry of the hlog vocabulary.
type Relation struct {
	Name   string
	Method mason.Method
	Title  string
}

// Relations lists every hlog control name with its method and title.
func Relations() []Relation {
	var rels []Relation
	for _, k := range Kinds {
		rels = append(rels, Relation{Name: AddRel(k), Method: mason.MethodPost, Title: addTitles[k]})
		if k.Editable() {
			rels = append(rels, Relation{Name: EditRel(k), Method: mason.MethodPut, Title: editTitles[k]})
		}
		rels = append(rels, Relation{Name: DeleteRel(k), Method: mason.MethodDelete, Title: deleteTitles[k]})
	}
	for _, name := range []string{RelActivitiesIn, RelLogsBy, RelReportsBy, RelUser, RelActivity, RelCategoriesAll, RelUsersAll} {
		rels = append(rels, Relation{Name: name, Method: mason.MethodGet, Title: navTitles[name]})
	}
	return rels
}

// Builder is a Mason document with the hlog namespace declared.
type Builder struct {
	*mason.Document
}

// NewBuilder returns an empty document carrying the hlog namespace.
func NewBuilder() *Builder {
	b := &Builder{Document: mason.New()}
	b.AddNamespace(NamespacePrefix, NamespaceURI)
	return b
}

// AddItemControls adds self, profile and, when the item has one, collection.
func (b *Builder) AddItemControls(key Key) {
	b.AddControl(RelSelf, key.ItemURL())
	b.AddControl(RelProfile, ProfileURL(key.Kind()))
	if href := key.CollectionURL(); href != "" {
		b.AddControl(RelCollection, href)
	}
}

// AddListControls adds self and the add control for a collection of kind.
func (b *Builder) AddListControls(kind Kind, scope string) {
	b.AddControl(RelSelf, CollectionURL(kind, scope))
	b.AddCreateControl(kind, scope)
}

// AddCreateControl adds hlog:add-<kind> targeting the collection.
func (b *Builder) AddCreateControl(kind Kind, scope string) {
	b.AddControl(AddRel(kind), CollectionURL(kind, scope),
		mason.WithMethod(mason.MethodPost),
		mason.WithEncoding(encodingJSON),
		mason.WithTitle(addTitles[kind]),
		mason.WithSchema(CreateSchema(kind)),
	)
}

// AddEditControl adds hlog:edit-<kind>. Immutable kinds get nothing.
func (b *Builder) AddEditControl(key Key) {
	kind := key.Kind()
	if !kind.Editable() {
		return
	}
	b.AddControl(EditRel(kind), key.ItemURL(),
		mason.WithMethod(mason.MethodPut),
		mason.WithEncoding(encodingJSON),
		mason.WithTitle(editTitles[kind]),
		mason.WithSchema(EditSchema(kind)),
	)
}

// AddDeleteControl adds hlog:delete-<kind>.
func (b *Builder) AddDeleteControl(key Key) {
	kind := key.Kind()
	b.AddControl(DeleteRel(kind), key.ItemURL(),
		mason.WithMethod(mason.MethodDelete),
		mason.WithTitle(deleteTitles[kind]),
	)
}

func (b *Builder) addNav(rel, href string) {
	b.AddControl(rel, href, mason.WithTitle(navTitles[rel]))
}

// AddActivitiesIn links a category to its activities.
func (b *Builder) AddActivitiesIn(category string) {
	b.addNav(RelActivitiesIn, ActivitiesURL(category))
}

// AddCategoryUp links an activity to its category.
func (b *Builder) AddCategoryUp(category string) {
	b.AddControl(RelUp, CategoryURL(category))
}

// AddLogsBy links a user to their logs.
func (b *Builder) AddLogsBy(username string) {
	b.addNav(RelLogsBy, LogsURL(username))
}

// AddReportsBy links a user to their time reports.
func (b *Builder) AddReportsBy(username string) {
	b.addNav(RelReportsBy, ReportsURL(username))
}

// AddOwner links a log or report to its user.
func (b *Builder) AddOwner(username string) {
	b.addNav(RelUser, UserURL(username))
}

// AddActivityLink links a log to the activity it records.
func (b *Builder) AddActivityLink(category, name string) {
	b.addNav(RelActivity, ActivityURL(category, name))
}

// AddCategoriesAll links to the category list.
func (b *Builder) AddCategoriesAll() {
	b.addNav(RelCategoriesAll, CategoriesPath)
}

// AddUsersAll links to the user list.
func (b *Builder) AddUsersAll() {
	b.addNav(RelUsersAll, UsersPath)
}

// NewErrorDocument builds the error representation for resourceURL.
func NewErrorDocument(resourceURL, title, detail string) *mason.Document {
	doc := mason.New()
	doc.SetField("resource_url", resourceURL)
	doc.AddError(title, detail)
	doc.AddControl(RelProfile, ErrorProfile)
	return doc
}
