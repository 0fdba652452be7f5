package domain

import (
	"sort"
	"strings"
)

// FilterAll is the unbounded sentinel for category filters.
const FilterAll = "All"

// Filter is a structured view specification over the log: free-text
// query, category filters, and an inclusive date range. Empty fields
// (or FilterAll for categories) leave that dimension unbounded.
type Filter struct {
	Query    string
	Subtest  string
	Material string
	From     string
	To       string
}

func (f Filter) Match(e Entry) bool {
	if f.Subtest != "" && f.Subtest != FilterAll && e.Subtest != f.Subtest {
		return false
	}
	if f.Material != "" && f.Material != FilterAll && e.MaterialType != f.Material {
		return false
	}
	// Day keys compare lexicographically in chronological order.
	if f.From != "" && e.Date < f.From {
		return false
	}
	if f.To != "" && e.Date > f.To {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		blob := strings.ToLower(e.Topic + " " + e.Notes + " " + e.ResourceURL)
		if !strings.Contains(blob, q) {
			return false
		}
	}
	return true
}

// ApplyFilter returns the matching entries ordered by date descending,
// ties broken by UpdatedAt descending. The input slice is not touched,
// so applying the same filter twice yields the same sequence.
func ApplyFilter(entries []Entry, f Filter) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}
