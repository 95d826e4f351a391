package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/charbrowser/internal/api"
	"github.com/jask/charbrowser/internal/locale"
	"github.com/jask/charbrowser/internal/pager"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

const base = "https://rickandmortyapi.com/api/character"

type fakeFetcher struct {
	pages map[string]api.Page
	fail  map[string]error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (api.Page, error) {
	f.calls = append(f.calls, url)
	if err, ok := f.fail[url]; ok {
		return api.Page{}, err
	}
	if p, ok := f.pages[url]; ok {
		return p, nil
	}
	return api.Page{}, &api.FetchFailure{URL: url, StatusCode: 404}
}

func testFetcher() *fakeFetcher {
	return &fakeFetcher{pages: map[string]api.Page{
		base: {
			Next: base + "?page=2", TotalPages: 2,
			Results: []api.Character{
				{ID: 1, Name: "Rick Sanchez", Species: "Human", Gender: "Male", Status: api.StatusAlive, LocationName: "Citadel of Ricks"},
				{ID: 2, Name: "Morty Smith", Species: "Human", Gender: "Male", Status: api.StatusAlive, LocationName: "Earth"},
			},
		},
		base + "?page=2": {
			Prev: base + "?page=1", TotalPages: 2,
			Results: []api.Character{
				{ID: 21, Name: "Aqua Morty", Species: "Humanoid", Gender: "Male", Status: api.StatusUnknown},
				{ID: 22, Name: "Aqua Rick", Species: "Humanoid", Gender: "Male", Status: api.StatusDead, FirstEpisodeName: "Close Rick-counters of the Rick Kind"},
			},
		},
	}}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// drain runs cmd and feeds back the app's own messages. Animation and other
// bubbles messages are dropped so tests never sleep.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 64 {
			t.Fatal("command chain exceeded max depth")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case pageLoadedMsg, localeSavedMsg:
			_, next := a.Update(msg)
			queue = append(queue, next)
		}
	}
}

func press(t *testing.T, a *App, k string) {
	t.Helper()
	_, cmd := a.Update(keyPress(k))
	drain(t, a, cmd)
}

func typeText(t *testing.T, a *App, s string) {
	t.Helper()
	for _, r := range s {
		press(t, a, string(r))
	}
}

func mounted(t *testing.T, f api.Fetcher, opts Options) *App {
	t.Helper()
	a := New(context.Background(), f, opts)
	drain(t, a, a.Init())
	return a
}

// ---------------------------------------------------------------------------
// Flows
// ---------------------------------------------------------------------------

func TestInitShowsLoadingThenCards(t *testing.T) {
	a := New(context.Background(), testFetcher(), Options{BaseURL: base, Locale: locale.English})
	cmd := a.Init()
	if !a.Controller().State().Loading {
		t.Fatal("expected loading after Init")
	}
	if !strings.Contains(a.View(), "Loading") {
		t.Error("expected loading indicator in view")
	}

	drain(t, a, cmd)
	s := a.Controller().State()
	if s.Loading || len(s.Items) != 2 {
		t.Fatalf("after load: loading=%v items=%d", s.Loading, len(s.Items))
	}
	view := a.View()
	for _, want := range []string{"Rick Sanchez", "Morty Smith", "Rick and Morty Characters"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestNextAndPrevKeys(t *testing.T) {
	f := testFetcher()
	a := mounted(t, f, Options{BaseURL: base})

	press(t, a, "right")
	if got := a.Controller().State().Page; got != 2 {
		t.Fatalf("page after next = %d", got)
	}
	if got := f.calls[len(f.calls)-1]; got != base+"?page=2" {
		t.Fatalf("next requested %q", got)
	}
	if !strings.Contains(a.View(), "Aqua Rick") {
		t.Error("expected page 2 cards")
	}

	press(t, a, "l") // no next cursor on the last page
	if got := len(f.calls); got != 2 {
		t.Fatalf("disabled next issued a request: %v", f.calls)
	}

	press(t, a, "h")
	if got := a.Controller().State().Page; got != 1 {
		t.Fatalf("page after prev = %d", got)
	}
}

func TestNavigationIgnoredWhileLoading(t *testing.T) {
	f := testFetcher()
	a := mounted(t, f, Options{BaseURL: base})

	_, pending := a.Update(keyPress("right"))
	_, again := a.Update(keyPress("right"))
	if again != nil {
		t.Fatal("second next while loading should not issue a fetch")
	}
	drain(t, a, pending)
	if got := a.Controller().State().Page; got != 2 {
		t.Fatalf("page = %d, want 2", got)
	}
	if len(f.calls) != 2 {
		t.Fatalf("calls = %v", f.calls)
	}
}

func TestFetchErrorShowsRetry(t *testing.T) {
	f := testFetcher()
	f.fail = map[string]error{base: errors.New("dial tcp: lookup rickandmortyapi.com: no such host")}
	a := mounted(t, f, Options{BaseURL: base})

	s := a.Controller().State()
	if s.Phase != pager.PhaseErrored || s.Loading {
		t.Fatalf("state = %+v", s)
	}
	view := a.View()
	if !strings.Contains(view, "no such host") || !strings.Contains(view, "Try Again") {
		t.Fatalf("error view missing message or retry: %s", view)
	}

	f.fail = nil
	press(t, a, "r")
	if s := a.Controller().State(); s.Phase != pager.PhaseLoaded || len(s.Items) != 2 {
		t.Fatalf("after retry: %+v", s)
	}
}

func TestSearchFiltersLoadedPageOnly(t *testing.T) {
	f := testFetcher()
	a := mounted(t, f, Options{BaseURL: base})

	press(t, a, "/")
	typeText(t, a, "MORTY")
	press(t, a, "enter")

	got := a.Visible()
	if len(got) != 1 || got[0].Name != "Morty Smith" {
		t.Fatalf("visible = %+v", got)
	}
	if len(f.calls) != 1 {
		t.Fatalf("search hit the network: %v", f.calls)
	}
	if s := a.Controller().State(); len(s.Items) != 2 || s.Page != 1 {
		t.Fatalf("search mutated state: %+v", s)
	}
	view := a.View()
	if strings.Contains(view, "Rick Sanchez") {
		t.Error("filtered-out card still rendered")
	}

	press(t, a, "/")
	press(t, a, "esc")
	if len(a.Visible()) != 2 {
		t.Fatal("esc should clear the query")
	}
}

func TestSearchTypingDoesNotNavigate(t *testing.T) {
	f := testFetcher()
	a := mounted(t, f, Options{BaseURL: base})

	press(t, a, "/")
	typeText(t, a, "lgq")
	if len(f.calls) != 1 {
		t.Fatalf("keys typed into search triggered navigation: %v", f.calls)
	}
	if got := a.search.Value(); got != "lgq" {
		t.Fatalf("query = %q", got)
	}
}

func TestSearchSuggestion(t *testing.T) {
	a := mounted(t, testFetcher(), Options{BaseURL: base})
	press(t, a, "/")
	typeText(t, a, "mortty")
	view := a.View()
	if !strings.Contains(view, "Did you mean Morty Smith?") {
		t.Fatalf("expected suggestion, view:\n%s", view)
	}
}

func TestLanguageToggleRelabelsAndSaves(t *testing.T) {
	var saved []locale.Locale
	a := mounted(t, testFetcher(), Options{
		BaseURL:    base,
		Locale:     locale.English,
		SaveLocale: func(l locale.Locale) error { saved = append(saved, l); return nil },
	})

	press(t, a, "L")
	view := a.View()
	if !strings.Contains(view, "Personajes de Rick y Morty") {
		t.Errorf("expected spanish title")
	}
	if !strings.Contains(view, "Vivo") {
		t.Errorf("expected spanish status label")
	}
	if len(saved) != 1 || saved[0] != locale.Spanish {
		t.Fatalf("saved = %v", saved)
	}

	press(t, a, "L")
	if !strings.Contains(a.View(), "Rick and Morty Characters") {
		t.Error("expected english title after second toggle")
	}
}

func TestLanguageSaveErrorSurfaces(t *testing.T) {
	a := mounted(t, testFetcher(), Options{
		BaseURL:    base,
		SaveLocale: func(locale.Locale) error { return errors.New("read-only file system") },
	})
	press(t, a, "L")
	if !strings.Contains(a.View(), "read-only file system") {
		t.Fatal("expected save error in status line")
	}
}

func TestStaleResponseDropped(t *testing.T) {
	a := mounted(t, testFetcher(), Options{BaseURL: base})
	old := pager.Request{Seq: 0, URL: base}
	a.Update(pageLoadedMsg{req: old, page: api.Page{Results: []api.Character{{Name: "Stale"}}}})
	if strings.Contains(a.View(), "Stale") {
		t.Fatal("stale response rendered")
	}
}

func TestQuit(t *testing.T) {
	a := mounted(t, testFetcher(), Options{BaseURL: base})
	_, cmd := a.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
