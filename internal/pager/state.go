package pager

import "github.com/jask/charbrowser/internal/api"

// Phase is the controller's position in its fetch state machine.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseErrored Phase = "errored"
)

// Request identifies one load. Seq increases monotonically per controller;
// only the completion carrying the latest Seq is applied.
type Request struct {
	Seq   uint64
	URL   string
	Delta int
}

// State is an immutable snapshot of the controller. Values returned by
// Controller.State never alias controller memory.
type State struct {
	Items      []api.Character
	NextCursor string // empty when absent
	PrevCursor string
	Page       int
	TotalPages int // 0 until the first successful load
	Loading    bool
	Err        string // empty when absent
	Phase      Phase

	Pending    Request // valid while Loading
	LastFailed Request // valid while Phase == PhaseErrored
}

// HasNext reports whether a next cursor is present.
func (s State) HasNext() bool { return s.NextCursor != "" }

// HasPrev reports whether a previous cursor is present.
func (s State) HasPrev() bool { return s.PrevCursor != "" }

func (s State) clone() State {
	out := s
	if s.Items != nil {
		out.Items = make([]api.Character, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}
