package pager

import (
	"fmt"

	"github.com/jask/charbrowser/internal/api"
)

// Action is a navigation intent coming from the presentation layer.
type Action string

const (
	ActionFirst Action = "first"
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionLast  Action = "last"
	ActionRetry Action = "retry"
)

// Intent resolves a navigation action against the current state. ok is
// false when the action is disabled; every action is disabled while a load
// is in flight.
func (c *Controller) Intent(a Action) (url string, delta int, ok bool) {
	s := c.state
	if s.Loading {
		return "", 0, false
	}
	switch a {
	case ActionFirst:
		if s.Page == 1 {
			return "", 0, false
		}
		return c.base, -(s.Page - 1), true
	case ActionPrev:
		if !s.HasPrev() {
			return "", 0, false
		}
		return s.PrevCursor, -1, true
	case ActionNext:
		if !s.HasNext() {
			return "", 0, false
		}
		return s.NextCursor, 1, true
	case ActionLast:
		if !s.HasNext() {
			return "", 0, false
		}
		// Jump to the final page when the envelope told us how many there
		// are; otherwise advance one page.
		target := s.Page + 1
		if s.TotalPages > s.Page {
			target = s.TotalPages
		}
		u, err := api.PageURL(c.base, target)
		if err != nil {
			return "", 0, false
		}
		return u, target - s.Page, true
	case ActionRetry:
		if s.Phase != PhaseErrored {
			return "", 0, false
		}
		return s.LastFailed.URL, s.LastFailed.Delta, true
	}
	return "", 0, false
}

// Enabled reports whether a is currently available.
func (c *Controller) Enabled(a Action) bool {
	_, _, ok := c.Intent(a)
	return ok
}

// Navigate resolves a and begins its load.
func (c *Controller) Navigate(a Action) (Request, error) {
	url, delta, ok := c.Intent(a)
	if !ok {
		return Request{}, fmt.Errorf("navigate %s: action disabled", a)
	}
	return c.Begin(url, delta)
}
