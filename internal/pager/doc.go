// Package pager owns the page/fetch state of the character browser.
//
// Allowed here:
// - PageState transitions (begin, complete, fail), request sequencing
// - the navigation contract (first/prev/next/last/retry)
// - local, view-level search over the loaded page
//
// Not allowed here:
// - rendering, key handling or locale lookups (tui, locale)
// - HTTP details beyond the api.Fetcher contract
package pager
