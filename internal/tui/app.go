package tui

import (
	"context"
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/charbrowser/internal/api"
	"github.com/jask/charbrowser/internal/locale"
	"github.com/jask/charbrowser/internal/pager"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	// header, search box (3), nav bar, help and spacing
	chromeHeight = 8
)

// App is the Bubble Tea model for the character browser. Navigation keys
// become controller intents; the view is a function of the controller's
// latest state plus the search query.
type App struct {
	ctx        context.Context
	ctrl       *pager.Controller
	fetcher    api.Fetcher
	catalog    *locale.Catalog
	locale     locale.Locale
	saveLocale func(locale.Locale) error

	keys    keyMap
	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	body    viewport.Model

	width  int
	height int
	status string
}

// Options configures New.
type Options struct {
	BaseURL string
	Locale  locale.Locale
	Catalog *locale.Catalog
	// SaveLocale persists a language change; nil skips persistence.
	SaveLocale func(locale.Locale) error
}

type pageLoadedMsg struct {
	req  pager.Request
	page api.Page
	err  error
}

type localeSavedMsg struct {
	locale locale.Locale
	err    error
}

func New(ctx context.Context, fetcher api.Fetcher, opts Options) *App {
	cat := opts.Catalog
	if cat == nil {
		cat = locale.MustLoad()
	}
	loc := opts.Locale
	if !cat.Has(loc) {
		loc = locale.Fallback
	}

	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)

	a := &App{
		ctx:        ctx,
		ctrl:       pager.New(opts.BaseURL),
		fetcher:    fetcher,
		catalog:    cat,
		locale:     loc,
		saveLocale: opts.SaveLocale,
		search:     ti,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		help:       help.New(),
		body:       viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	a.applyLocale()
	a.refresh()
	return a
}

// Controller exposes the page controller driving this view.
func (a *App) Controller() *pager.Controller { return a.ctrl }

func (a *App) labels() locale.Labels { return a.catalog.Labels(a.locale) }

func (a *App) Init() tea.Cmd {
	req := a.ctrl.Mount()
	a.refresh()
	return tea.Batch(a.fetchCmd(req), a.spinner.Tick)
}

func (a *App) fetchCmd(req pager.Request) tea.Cmd {
	ctx, f := a.ctx, a.fetcher
	return func() tea.Msg {
		page, err := f.Fetch(ctx, req.URL)
		return pageLoadedMsg{req: req, page: page, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case pageLoadedMsg:
		if !a.ctrl.Complete(m.req, m.page, m.err) {
			log.Printf("dropped stale response seq=%d url=%s", m.req.Seq, m.req.URL)
			break
		}
		if m.err == nil {
			a.body.GotoTop()
		}
	case localeSavedMsg:
		if m.err != nil {
			a.status = "save locale: " + m.err.Error()
			log.Printf("save locale %s: %v", m.locale, m.err)
		} else {
			a.status = ""
		}
	case spinner.TickMsg:
		if a.ctrl.State().Loading {
			a.spinner, cmd = a.spinner.Update(m)
		}
	case tea.KeyMsg:
		cmd = a.handleKey(m)
	}
	a.refresh()
	return a, cmd
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if m.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.search.Focused() {
		switch {
		case key.Matches(m, a.keys.Done):
			a.search.Blur()
			return nil
		case key.Matches(m, a.keys.Cancel):
			a.search.Reset()
			a.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(m)
		return cmd
	}

	// Nav bindings are disabled while unavailable, so match on their keys
	// directly to keep them away from the viewport.
	for _, nb := range a.keys.navBindings() {
		if slices.Contains(nb.binding.Keys(), m.String()) {
			return a.navigate(nb.action)
		}
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Search):
		return a.search.Focus()
	case key.Matches(m, a.keys.Language):
		return a.toggleLocale()
	}

	var cmd tea.Cmd
	a.body, cmd = a.body.Update(m)
	return cmd
}

// navigate issues the load for action. Disabled actions (including every
// action while a load is in flight) are ignored.
func (a *App) navigate(action pager.Action) tea.Cmd {
	if !a.ctrl.Enabled(action) {
		return nil
	}
	req, err := a.ctrl.Navigate(action)
	if err != nil {
		log.Printf("navigate %s: %v", action, err)
		return nil
	}
	return tea.Batch(a.fetchCmd(req), a.spinner.Tick)
}

func (a *App) toggleLocale() tea.Cmd {
	a.locale = a.locale.Next()
	a.applyLocale()
	save, loc := a.saveLocale, a.locale
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return localeSavedMsg{locale: loc, err: save(loc)}
	}
}

func (a *App) applyLocale() {
	l := a.labels()
	a.keys = newKeyMap(l)
	a.search.Placeholder = l.T(locale.KeySearchPlaceholder)
}

// refresh syncs key availability and the scrollable body with the current
// state. Called after every update.
func (a *App) refresh() {
	for _, nb := range a.keys.navBindings() {
		nb.binding.SetEnabled(a.ctrl.Enabled(nb.action))
	}
	a.help.Width = a.width
	a.body.Width = a.width
	a.body.Height = max(3, a.height-chromeHeight)
	a.body.SetContent(a.renderBody())
}

// Visible returns the characters currently shown: the loaded page filtered by
// the search query.
func (a *App) Visible() []api.Character {
	return a.ctrl.Search(a.search.Value())
}

func (a *App) renderBody() string {
	s := a.ctrl.State()
	l := a.labels()
	switch {
	case s.Loading:
		return a.spinner.View() + " " + statusStyle.Render(l.T("loading"))
	case s.Phase == pager.PhaseErrored:
		return errorStyle.Render(s.Err + "\n\n" + hintStyle.Render("[r] "+l.T(locale.KeyTryAgain)))
	}

	query := a.search.Value()
	items := a.ctrl.Search(query)
	if len(items) == 0 && query != "" {
		msg := statusStyle.Render(l.T("no_results", "query", query))
		if name := a.ctrl.Suggest(query); name != "" {
			msg += "\n" + hintStyle.Render(l.T("did_you_mean", "name", name))
		}
		return msg
	}
	return RenderCardGrid(items, l, a.width)
}

func (a *App) renderHeader() string {
	l := a.labels()
	var switcher []string
	for _, loc := range locale.Supported {
		label := strings.ToUpper(string(loc))
		if loc == a.locale {
			switcher = append(switcher, activeLocaleStyle.Render(label))
		} else {
			switcher = append(switcher, inactiveLocaleStyle.Render(label))
		}
	}
	title := titleStyle.Render(l.T(locale.KeyTitle))
	right := lipgloss.JoinHorizontal(lipgloss.Center, switcher...)
	pad := max(1, a.width-4-lipgloss.Width(title)-lipgloss.Width(right))
	return headerBarStyle.Width(a.width).Render(title + strings.Repeat(" ", pad) + right)
}

func (a *App) View() string {
	box := searchBoxStyle
	if a.search.Focused() {
		box = searchBoxFocusStyle
	}
	parts := []string{
		a.renderHeader(),
		box.Width(max(10, a.width-2)).Render(a.search.View()),
		a.body.View(),
		RenderNavBar(a.ctrl.State(), a.ctrl.Enabled, a.labels()),
		a.help.View(a.keys),
	}
	if a.status != "" {
		parts = append(parts, statusStyle.Render(a.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
