package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/charbrowser/internal/api"
	"github.com/jask/charbrowser/internal/locale"
)

const (
	cardWidth = 32
	cardGap   = 1
)

// badge is the visual treatment for one status.
type badge struct {
	icon     string
	labelKey string
	color    lipgloss.Color
}

var badges = map[api.Status]badge{
	api.StatusAlive:   {icon: "●", labelKey: locale.KeyStatusAlive, color: colorSuccess},
	api.StatusDead:    {icon: "✖", labelKey: locale.KeyStatusDead, color: colorError},
	api.StatusUnknown: {icon: "?", labelKey: locale.KeyStatusUnknown, color: colorOverlay1},
}

func badgeFor(s api.Status) badge {
	if b, ok := badges[s]; ok {
		return b
	}
	return badges[api.StatusUnknown]
}

// RenderStatusBadge renders the icon and localized label for a status.
func RenderStatusBadge(s api.Status, labels locale.Labels) string {
	b := badgeFor(s)
	return lipgloss.NewStyle().Foreground(b.color).Bold(true).Render(b.icon + " " + labels.T(b.labelKey))
}

// RenderCard renders one character. It is a pure function of its inputs.
func RenderCard(c api.Character, labels locale.Labels) string {
	inner := cardWidth - 4 // border + padding
	episode := c.FirstEpisodeName
	if episode == "" {
		episode = labels.T(locale.KeyStatusUnknown)
	}
	species := labels.T(locale.KeySpeciesInfo, "species", c.Species, "gender", c.Gender)

	lines := []string{
		cardNameStyle.Width(inner).Render(c.Name),
		RenderStatusBadge(c.Status, labels) + " " + speciesStyle.Render(species),
		"",
		cardLabelStyle.Render(labels.T(locale.KeyLastLocation)),
		cardValueStyle.Width(inner).Render(c.LocationName),
		cardLabelStyle.Render(labels.T(locale.KeyFirstSeen)),
		cardValueStyle.Width(inner).Render(episode),
	}
	return cardStyle.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}

// RenderCardGrid lays cards out in as many columns as width allows.
func RenderCardGrid(items []api.Character, labels locale.Labels, width int) string {
	if len(items) == 0 {
		return ""
	}
	cols := max(1, (width+cardGap)/(cardWidth+cardGap))
	gap := strings.Repeat(" ", cardGap)

	var rows []string
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, gap)
			}
			row = append(row, RenderCard(items[i], labels))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
