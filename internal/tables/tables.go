// Package tables loads the lookup tables the organizer runs on: the stop-word
// list used by name detection, the category table used by type sorting and the
// dangerous-extension denylist. Tables are loaded once and never mutated.
package tables

import (
	"sort"
	"strings"
)

// OtherCategory is the destination for extensions no category claims.
const OtherCategory = "Other"

// StringSet is a set of lowercase strings
type StringSet map[string]struct{}

// NewStringSet builds a set, lowercasing and trimming every item
func NewStringSet(items ...string) StringSet {
	set := make(StringSet, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// NewExtensionSet builds a set of normalized extensions (lowercase, leading dot)
func NewExtensionSet(exts ...string) StringSet {
	set := make(StringSet, len(exts))
	for _, ext := range exts {
		if ext = NormalizeExt(ext); ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

// Has reports whether v is in the set
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the set members in lexical order
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// NormalizeExt lowercases an extension and gives it a leading dot
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// CategoryTable maps category names to extensions and back.
//
// An extension listed under several categories resolves to the category whose
// name sorts last, so lookups do not depend on map iteration order.
type CategoryTable struct {
	categories map[string][]string
	byExt      map[string]string
}

// NewCategoryTable normalizes the given mapping into a lookup table
func NewCategoryTable(mapping map[string][]string) *CategoryTable {
	t := &CategoryTable{
		categories: make(map[string][]string, len(mapping)),
		byExt:      make(map[string]string),
	}

	names := make([]string, 0, len(mapping))
	for name := range mapping {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		exts := make([]string, 0, len(mapping[name]))
		for _, ext := range mapping[name] {
			if ext = NormalizeExt(ext); ext != "" {
				exts = append(exts, ext)
				t.byExt[ext] = name
			}
		}
		t.categories[name] = exts
	}

	return t
}

// Lookup returns the category for a normalized extension
func (t *CategoryTable) Lookup(ext string) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.byExt[ext]
	return name, ok
}

// CategoryFor returns the category for ext, or OtherCategory
func (t *CategoryTable) CategoryFor(ext string) string {
	if name, ok := t.Lookup(ext); ok {
		return name
	}
	return OtherCategory
}

// Names returns the category names in lexical order
func (t *CategoryTable) Names() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mapping returns a copy of the category → extensions mapping
func (t *CategoryTable) Mapping() map[string][]string {
	out := make(map[string][]string, len(t.categories))
	for name, exts := range t.categories {
		out[name] = append([]string(nil), exts...)
	}
	return out
}

// Source describes where a table came from
type Source struct {
	Path     string // file that was read; empty for the built-in fallback
	Fallback bool
	Reason   string // why the fallback was used
}

// String renders the source for display
func (s Source) String() string {
	if !s.Fallback {
		return s.Path
	}
	if s.Reason == "" {
		return "built-in"
	}
	return "built-in (" + s.Reason + ")"
}

// Tables is the immutable set of tables threaded through an organizer run
type Tables struct {
	StopWords  StringSet
	Categories *CategoryTable
	Dangerous  StringSet

	StopWordsSource  Source
	CategoriesSource Source
	DangerousSource  Source
}

// Defaults returns the built-in tables
func Defaults() *Tables {
	return &Tables{
		StopWords:        NewStringSet(DefaultStopWords()...),
		Categories:       NewCategoryTable(DefaultCategories()),
		Dangerous:        NewExtensionSet(DefaultDangerousExts()...),
		StopWordsSource:  Source{Fallback: true},
		CategoriesSource: Source{Fallback: true},
		DangerousSource:  Source{Fallback: true},
	}
}
