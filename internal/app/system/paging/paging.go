// internal/app/system/paging/paging.go
package paging

import (
	"sort"
	"time"
)

// Args carries the page window and optional substring search sent in
// list request bodies. Field selects which attribute Search matches
// against; an empty Search disables filtering.
type Args struct {
	Page   int64  `json:"page"`
	Limit  int64  `json:"limit"`
	Search string `json:"search"`
	Field  string `json:"field"`
}

// AdminArgs is Args plus the admin bearer token carried in the body.
type AdminArgs struct {
	Token string `json:"token"`
	Args
}

// Skip returns the number of documents to pass over for the requested
// page: (page-1)*limit, floored at zero.
func (a Args) Skip() int64 {
	skip := (a.Page - 1) * a.Limit
	if skip < 0 {
		return 0
	}
	return skip
}

// Window applies skip/take pagination to an in-memory slice.
func Window[T any](rows []T, args Args) []T {
	skip := args.Skip()
	if skip >= int64(len(rows)) {
		return nil
	}
	rows = rows[skip:]
	if args.Limit > 0 && args.Limit < int64(len(rows)) {
		rows = rows[:args.Limit]
	}
	return rows
}

// Reverse reverses a slice in place.
func Reverse[T any](rows []T) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

// SortNewestFirst orders rows by creation time descending. Listings
// fetch an unordered page and reorder it in memory, so the ordering is
// page-local.
func SortNewestFirst[T any](rows []T, created func(T) time.Time) {
	sort.SliceStable(rows, func(i, j int) bool {
		return created(rows[i]).After(created(rows[j]))
	})
}
