package api

import (
	"encoding/json"
	"strings"
)

// Status is the vital status reported for a character.
type Status string

const (
	StatusAlive   Status = "Alive"
	StatusDead    Status = "Dead"
	StatusUnknown Status = "Unknown"
)

// ParseStatus maps the API's free-form status onto the three known values.
// Anything that is not alive or dead is unknown.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alive":
		return StatusAlive
	case "dead":
		return StatusDead
	default:
		return StatusUnknown
	}
}

// Character is one record returned by the character endpoint.
type Character struct {
	ID               int
	Name             string
	Species          string
	Gender           string
	Status           Status
	ImageURL         string
	LocationName     string
	FirstEpisodeName string // empty when the API does not supply a name
}

// Page is a decoded response envelope.
type Page struct {
	Next       string // empty when there is no next page
	Prev       string
	TotalPages int
	Count      int
	Results    []Character
}

type envelope struct {
	Info struct {
		Next  *string `json:"next"`
		Prev  *string `json:"prev"`
		Pages int     `json:"pages"`
		Count int     `json:"count"`
	} `json:"info"`
	Results []characterJSON `json:"results"`
}

type characterJSON struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Species  string            `json:"species"`
	Gender   string            `json:"gender"`
	Status   string            `json:"status"`
	Image    string            `json:"image"`
	Location namedRef          `json:"location"`
	Episode  []json.RawMessage `json:"episode"`
}

type namedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (e envelope) page() Page {
	p := Page{
		TotalPages: e.Info.Pages,
		Count:      e.Info.Count,
		Results:    make([]Character, 0, len(e.Results)),
	}
	if e.Info.Next != nil {
		p.Next = *e.Info.Next
	}
	if e.Info.Prev != nil {
		p.Prev = *e.Info.Prev
	}
	for _, c := range e.Results {
		p.Results = append(p.Results, Character{
			ID:               c.ID,
			Name:             c.Name,
			Species:          c.Species,
			Gender:           c.Gender,
			Status:           ParseStatus(c.Status),
			ImageURL:         c.Image,
			LocationName:     c.Location.Name,
			FirstEpisodeName: firstEpisodeName(c.Episode),
		})
	}
	return p
}

// firstEpisodeName reads the first episode entry. The live API sends episode
// URLs (no name available); expanded payloads send objects with a name.
func firstEpisodeName(episodes []json.RawMessage) string {
	if len(episodes) == 0 {
		return ""
	}
	var obj namedRef
	if err := json.Unmarshal(episodes[0], &obj); err == nil {
		return obj.Name
	}
	return ""
}
