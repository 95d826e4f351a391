package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/charbrowser/internal/config"
	"github.com/jask/charbrowser/internal/locale"
)

func characterServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "", "1":
			_, _ = w.Write([]byte(`{"info":{"count":3,"pages":2,"next":"` + "http://" + r.Host + `/api/character?page=2","prev":null},
"results":[{"id":1,"name":"Rick Sanchez","status":"Alive","species":"Human","gender":"Male","location":{"name":"Earth"},"episode":[]},
{"id":2,"name":"Morty Smith","status":"Alive","species":"Human","gender":"Male","location":{"name":"Earth"},"episode":[]}]}`))
		case "2":
			_, _ = w.Write([]byte(`{"info":{"count":3,"pages":2,"next":null,"prev":"` + "http://" + r.Host + `/api/character?page=1"},
"results":[{"id":3,"name":"Summer Smith","status":"Dead","species":"Human","gender":"Female","location":{"name":"Earth"},"episode":[]}]}`))
		default:
			http.Error(w, `{"error":"There is nothing here"}`, http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newCLIApp(&out)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	full := append([]string{"charbrowser", "--config", cfgPath}, args...)
	err := app.Run(full)
	return out.String(), err
}

func TestListFirstPage(t *testing.T) {
	srv := characterServer(t)
	out, err := runCLI(t, "--base-url", srv.URL+"/api/character", "--locale", "en", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Page 1 of 2", "Rick Sanchez", "Morty Smith", "Alive", "Human - Male"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListSecondPageSpanish(t *testing.T) {
	srv := characterServer(t)
	out, err := runCLI(t, "--base-url", srv.URL+"/api/character", "--locale", "es", "list", "--page", "2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Página 2 de 2") || !strings.Contains(out, "Muerto") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestListSearchWithSuggestion(t *testing.T) {
	srv := characterServer(t)
	out, err := runCLI(t, "--base-url", srv.URL+"/api/character", "--locale", "en", "list", "--search", "mortty")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, `No characters match "mortty"`) || !strings.Contains(out, "Did you mean Morty Smith?") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestListFetchFailure(t *testing.T) {
	srv := characterServer(t)
	_, err := runCLI(t, "--base-url", srv.URL+"/api/character", "list", "--page", "9")
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !strings.Contains(err.Error(), "Failed to fetch data") {
		t.Errorf("err = %v", err)
	}
}

func TestListRejectsPageZero(t *testing.T) {
	_, err := runCLI(t, "list", "--page", "0")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResolveLocale(t *testing.T) {
	env := func(k string) string {
		if k == "LANG" {
			return "es_AR.UTF-8"
		}
		return ""
	}
	if got := resolveLocale(config.Config{UI: config.UIConfig{Locale: "en"}}, env); got != locale.English {
		t.Errorf("configured locale ignored: %s", got)
	}
	if got := resolveLocale(config.Config{}, env); got != locale.Spanish {
		t.Errorf("env detection = %s", got)
	}
}
