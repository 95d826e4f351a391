package pager

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/charbrowser/internal/api"
)

// ErrInvalidDelta is returned when a load would move the page counter below 1.
var ErrInvalidDelta = errors.New("page delta would leave page below 1")

// ErrStale is returned by Load when a newer request superseded this one.
var ErrStale = errors.New("superseded by a newer request")

const fallbackErrMessage = "Failed to fetch data"

// Controller mediates between navigation intents and the remote paginated
// resource. It must be driven from a single goroutine (the Bubble Tea update
// loop); only the fetch itself may run elsewhere.
type Controller struct {
	base  string
	state State
	seq   uint64
	subs  []func(State)
}

// New returns a controller in the idle phase positioned on page 1.
func New(baseURL string) *Controller {
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	return &Controller{
		base:  baseURL,
		state: State{Page: 1, Phase: PhaseIdle},
	}
}

// BaseURL returns the resource URL used for first/last navigation.
func (c *Controller) BaseURL() string { return c.base }

// State returns a snapshot of the current page state.
func (c *Controller) State() State { return c.state.clone() }

// Subscribe registers fn to receive a snapshot after every transition.
func (c *Controller) Subscribe(fn func(State)) {
	c.subs = append(c.subs, fn)
}

// Mount starts the initial load of the base URL.
func (c *Controller) Mount() Request {
	req, _ := c.Begin(c.base, 0)
	return req
}

// Begin enters the loading phase for url: loading is set and the previous
// error cleared before anything is sent. The caller performs the fetch and
// hands the outcome to Complete.
func (c *Controller) Begin(url string, delta int) (Request, error) {
	if c.state.Page+delta < 1 {
		return Request{}, fmt.Errorf("begin %s (page %d, delta %d): %w", url, c.state.Page, delta, ErrInvalidDelta)
	}
	c.seq++
	req := Request{Seq: c.seq, URL: url, Delta: delta}
	c.state.Loading = true
	c.state.Err = ""
	c.state.Phase = PhaseLoading
	c.state.Pending = req
	c.notify()
	return req, nil
}

// Complete applies the outcome of req. It reports false, changing nothing,
// when req is not the most recent request.
func (c *Controller) Complete(req Request, page api.Page, err error) bool {
	if req.Seq != c.seq || !c.state.Loading {
		return false
	}
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fallbackErrMessage
		}
		c.state.Err = msg
		c.state.Phase = PhaseErrored
		c.state.LastFailed = req
	} else {
		items := make([]api.Character, len(page.Results))
		copy(items, page.Results)
		c.state.Items = items
		c.state.NextCursor = page.Next
		c.state.PrevCursor = page.Prev
		c.state.TotalPages = page.TotalPages
		c.state.Page += req.Delta
		c.state.Phase = PhaseLoaded
		c.state.LastFailed = Request{}
	}
	c.state.Loading = false
	c.state.Pending = Request{}
	c.notify()
	return true
}

// Load runs Begin, one fetch and Complete in sequence.
func (c *Controller) Load(ctx context.Context, f api.Fetcher, url string, delta int) (State, error) {
	req, err := c.Begin(url, delta)
	if err != nil {
		return c.State(), err
	}
	page, fetchErr := f.Fetch(ctx, url)
	if !c.Complete(req, page, fetchErr) {
		return c.State(), ErrStale
	}
	return c.State(), fetchErr
}

// Search filters the loaded page by name. It never touches the state.
func (c *Controller) Search(query string) []api.Character {
	return Filter(c.state.Items, query)
}

// Suggest returns a loaded name close to query when Search finds nothing.
func (c *Controller) Suggest(query string) string {
	return Suggest(c.state.Items, query)
}

func (c *Controller) notify() {
	if len(c.subs) == 0 {
		return
	}
	snap := c.state.clone()
	for _, fn := range c.subs {
		fn(snap)
	}
}
