// Package listutil holds the generic filter and sort helpers shared by the
// tasks, CRM, documents and knowledge screens.
package listutil

import (
	"sort"
	"strings"
)

// FilterBySubstring keeps the items whose searchable fields contain query,
// case-insensitively. An empty (or whitespace) query matches everything.
// The input slice is never mutated.
func FilterBySubstring[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SortByKey returns a new slice ordered by the string key; equal keys keep
// their input order. Callers map missing values to "" in the key func.
func SortByKey[T any](items []T, key func(T) string, desc bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}
