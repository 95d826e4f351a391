package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/charbrowser/internal/locale"
	"github.com/jask/charbrowser/internal/pager"
)

// RenderNavBar renders the pagination control. enabled reports which
// actions are currently available; disabled ones are dimmed.
func RenderNavBar(s pager.State, enabled func(pager.Action) bool, labels locale.Labels) string {
	item := func(glyph string, a pager.Action) string {
		if enabled != nil && enabled(a) {
			return navEnabledStyle.Render(glyph)
		}
		return navDisabledStyle.Render(glyph)
	}

	page := strconv.Itoa(s.Page)
	caption := labels.T("page", "page", page)
	if s.TotalPages > 0 {
		caption = labels.T("page_of", "page", page, "pages", strconv.Itoa(s.TotalPages))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		item("«", pager.ActionFirst),
		item("‹", pager.ActionPrev),
		navActiveStyle.Render(page),
		item("›", pager.ActionNext),
		item("»", pager.ActionLast),
		"  ",
		navCaptionStyle.Render(caption),
	)
}
