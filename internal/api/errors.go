package api

import "fmt"

// FetchFailure is the only error the client produces. Timeouts, DNS
// failures, 4xx and 5xx all collapse into it.
type FetchFailure struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (f *FetchFailure) Error() string {
	if f.Err != nil {
		return f.Err.Error()
	}
	if f.StatusCode != 0 {
		return fmt.Sprintf("Failed to fetch data (HTTP %d)", f.StatusCode)
	}
	return "Failed to fetch data"
}

func (f *FetchFailure) Unwrap() error { return f.Err }
