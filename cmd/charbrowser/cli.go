package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/jask/charbrowser/internal/api"
	"github.com/jask/charbrowser/internal/config"
	"github.com/jask/charbrowser/internal/locale"
	"github.com/jask/charbrowser/internal/pager"
	"github.com/jask/charbrowser/internal/telemetry"
	"github.com/jask/charbrowser/internal/tui"
)

// newCLIApp creates the CLI application. Without a subcommand it starts the
// interactive browser.
func newCLIApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "charbrowser",
		Usage:   "Browse Rick and Morty characters",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Config file (default ~/.config/charbrowser/config.toml)"},
			&cli.StringFlag{Name: "locale", Usage: "UI language: en|es (default: config, then $LANG)"},
			&cli.StringFlag{Name: "base-url", Usage: "Character collection URL"},
			&cli.StringFlag{Name: "log-file", Usage: "Write logs to this file"},
		},
		Action: runBrowser,
		Commands: []*cli.Command{
			listCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if v := c.String("base-url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := c.String("locale"); v != "" {
		cfg.UI.Locale = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.Log.File = v
	}
	return cfg, nil
}

func resolveLocale(cfg config.Config, getenv func(string) string) locale.Locale {
	if loc, ok := locale.Parse(cfg.UI.Locale); ok {
		return loc
	}
	return locale.Detect(getenv)
}

func newClient(cfg config.Config) *api.Client {
	ua := cfg.API.UserAgent
	if ua == "" {
		ua = "charbrowser"
	}
	return api.NewClient(ua+"/"+Version, cfg.HTTP.Timeout)
}

func runBrowser(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "charbrowser")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	tp, err := telemetry.Init(ctx, cfg.Telemetry, "charbrowser", Version)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	configPath := c.String("config")
	save := func(loc locale.Locale) error {
		return config.SaveLocale(configPath, string(loc))
	}

	model := tui.New(ctx, newClient(cfg), tui.Options{
		BaseURL:    cfg.API.BaseURL,
		Locale:     resolveLocale(cfg, os.Getenv),
		Catalog:    locale.MustLoad(),
		SaveLocale: save,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// listCmd prints one page without the interactive UI.
func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the characters on one page",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "Page number"},
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Filter the page by name"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if cfg.Log.File == "" {
				log.SetOutput(io.Discard)
			}
			return listPage(c.Context, c.App.Writer, newClient(cfg), cfg, c.Int("page"), c.String("search"))
		},
	}
}

func listPage(ctx context.Context, w io.Writer, f api.Fetcher, cfg config.Config, page int, query string) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", page)
	}
	ctrl := pager.New(cfg.API.BaseURL)
	url := ctrl.BaseURL()
	if page > 1 {
		u, err := api.PageURL(url, page)
		if err != nil {
			return err
		}
		url = u
	}
	if _, err := ctrl.Load(ctx, f, url, page-1); err != nil {
		return fmt.Errorf("load page %d: %w", page, err)
	}

	labels := locale.MustLoad().Labels(resolveLocale(cfg, os.Getenv))
	s := ctrl.State()
	caption := labels.T("page", "page", strconv.Itoa(s.Page))
	if s.TotalPages > 0 {
		caption = labels.T("page_of", "page", strconv.Itoa(s.Page), "pages", strconv.Itoa(s.TotalPages))
	}
	fmt.Fprintln(w, caption)

	items := ctrl.Search(query)
	for _, ch := range items {
		status := labels.T("status_" + strings.ToLower(string(ch.Status)))
		fmt.Fprintf(w, "%4d  %-32s %-12s %s\n", ch.ID, ch.Name, status,
			labels.T(locale.KeySpeciesInfo, "species", ch.Species, "gender", ch.Gender))
	}
	if len(items) == 0 && query != "" {
		fmt.Fprintln(w, labels.T("no_results", "query", query))
		if name := ctrl.Suggest(query); name != "" {
			fmt.Fprintln(w, labels.T("did_you_mean", "name", name))
		}
	}
	return nil
}
