// Package locale provides the label lookup used by the renderers: static
// per-locale string tables with English fallback.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Locale identifies one string table.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"

	// Fallback satisfies lookups missing from the active locale.
	Fallback = English
)

// Supported lists the selectable locales in toggle order.
var Supported = []Locale{English, Spanish}

// Keys every fallback table must define.
const (
	KeyTitle             = "title"
	KeySearchPlaceholder = "search_placeholder"
	KeyStatusAlive       = "status_alive"
	KeyStatusDead        = "status_dead"
	KeyStatusUnknown     = "status_unknown"
	KeySpeciesInfo       = "species_info"
	KeyLastLocation      = "last_location"
	KeyFirstSeen         = "first_seen"
	KeyTryAgain          = "try_again"
)

var requiredKeys = []string{
	KeyTitle, KeySearchPlaceholder, KeyStatusAlive, KeyStatusDead, KeyStatusUnknown,
	KeySpeciesInfo, KeyLastLocation, KeyFirstSeen, KeyTryAgain,
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

type tableFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the string tables for every loaded locale.
type Catalog struct {
	tables map[Locale]map[string]string
}

// Load reads the embedded tables.
func Load() (*Catalog, error) {
	return LoadFS(embeddedFS)
}

// LoadFS reads locales/*.yaml from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale tables: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale tables found")
	}
	sort.Strings(paths)

	c := &Catalog{tables: map[Locale]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var tf tableFile
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		loc := Locale(strings.TrimSpace(tf.Locale))
		if want := Locale(strings.TrimSuffix(path.Base(p), path.Ext(p))); loc != want {
			return nil, fmt.Errorf("%s: locale %q must match file name %q", p, loc, want)
		}
		if _, dup := c.tables[loc]; dup {
			return nil, fmt.Errorf("%s: locale %q defined twice", p, loc)
		}
		if len(tf.Messages) == 0 {
			return nil, fmt.Errorf("%s: messages are required", p)
		}
		c.tables[loc] = tf.Messages
	}

	fb, ok := c.tables[Fallback]
	if !ok {
		return nil, fmt.Errorf("fallback locale %s is not defined", Fallback)
	}
	for _, k := range requiredKeys {
		if _, ok := fb[k]; !ok {
			return nil, fmt.Errorf("fallback locale %s: missing key %q", Fallback, k)
		}
	}
	return c, nil
}

// MustLoad is Load for program start-up.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Has reports whether loc has its own table.
func (c *Catalog) Has(loc Locale) bool {
	_, ok := c.tables[loc]
	return ok
}

// Lookup returns the message for key in loc, falling back to the fallback
// locale and finally to the key itself. vars are name/value pairs
// substituted into {{name}} placeholders.
func (c *Catalog) Lookup(loc Locale, key string, vars ...string) string {
	msg, ok := c.tables[loc][key]
	if !ok {
		msg, ok = c.tables[Fallback][key]
	}
	if !ok {
		return key
	}
	if len(vars) < 2 {
		return msg
	}
	pairs := make([]string, 0, len(vars))
	for i := 0; i+1 < len(vars); i += 2 {
		pairs = append(pairs, "{{"+vars[i]+"}}", vars[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Labels binds a catalog to one locale.
func (c *Catalog) Labels(loc Locale) Labels {
	return Labels{catalog: c, locale: loc}
}

// Labels is the label-lookup function handed to renderers.
type Labels struct {
	catalog *Catalog
	locale  Locale
}

func (l Labels) Locale() Locale { return l.locale }

// T looks up key; see Catalog.Lookup.
func (l Labels) T(key string, vars ...string) string {
	if l.catalog == nil {
		return key
	}
	return l.catalog.Lookup(l.locale, key, vars...)
}

// Parse maps a locale name such as "es", "es-MX" or "es_ES.UTF-8" onto a
// supported locale.
func Parse(s string) (Locale, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return Supported[idx], true
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// Detect picks a locale from the first set POSIX locale variable.
func Detect(getenv func(string) string) Locale {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(name); v != "" {
			if loc, ok := Parse(v); ok {
				return loc
			}
			return Fallback
		}
	}
	return Fallback
}

// Next returns the locale after l in toggle order.
func (l Locale) Next() Locale {
	for i, s := range Supported {
		if s == l {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Fallback
}
