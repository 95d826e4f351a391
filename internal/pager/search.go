package pager

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/jask/charbrowser/internal/api"
)

// Filter returns the characters whose name contains query, ignoring case.
// An empty query returns every item in order. The input is never modified.
func Filter(items []api.Character, query string) []api.Character {
	out := make([]api.Character, 0, len(items))
	if query == "" {
		return append(out, items...)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	for _, it := range items {
		if strings.Contains(fold.String(it.Name), needle) {
			out = append(out, it)
		}
	}
	return out
}

// Suggest returns the loaded name nearest to query by edit distance, compared
// against whole names and their individual words. It returns "" when query is
// blank, already matches something, or nothing is close enough.
func Suggest(items []api.Character, query string) string {
	query = strings.TrimSpace(query)
	if query == "" || len(Filter(items, query)) > 0 {
		return ""
	}
	fold := cases.Fold()
	needle := fold.String(query)
	limit := max(1, utf8.RuneCountInString(needle)/3)

	best, bestDist := "", limit+1
	for _, it := range items {
		name := fold.String(it.Name)
		candidates := append([]string{name}, strings.Fields(name)...)
		for _, cand := range candidates {
			if d := levenshtein.ComputeDistance(needle, cand); d < bestDist {
				best, bestDist = it.Name, d
			}
		}
	}
	return best
}
