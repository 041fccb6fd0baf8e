// Package locale ships the embedded locale bundles backing the date package:
// ordered string lists addressed by dotted category key, with English as the
// fallback chain for keys a language does not define.
package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed data/*.json
var dataFS embed.FS

const fallbackName = "en"

// ErrUnknownKey is wrapped by GetArray when a key resolves to nothing in the
// locale or its fallback chain.
var ErrUnknownKey = errors.New("unknown category key")

// Locale is an immutable view over one embedded language bundle.
type Locale struct {
	name     string
	data     map[string]any
	fallback map[string]any // nil for the English bundle itself
}

// Available lists the embedded locale names, English first.
func Available() ([]string, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("locale: read embedded bundles: %w", err)
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".json")
		if !ok {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == fallbackName {
			return true
		}
		if names[j] == fallbackName {
			return false
		}
		return names[i] < names[j]
	})
	return names, nil
}

// New loads the bundle best matching the requested BCP 47 tag ("fr",
// "fr-CA", "ru", ...). Regional variants match their base language; tags
// matching nothing fall back to English. Non-English locales chain to the
// English bundle for keys they do not define.
func New(name string) (*Locale, error) {
	names, err := Available()
	if err != nil {
		return nil, err
	}

	matched := fallbackName
	if want, perr := language.Parse(name); perr == nil {
		tags := make([]language.Tag, len(names))
		for i, n := range names {
			tags[i] = language.Make(n)
		}
		_, idx, _ := language.NewMatcher(tags).Match(want)
		matched = names[idx]
	}

	data, err := load(matched)
	if err != nil {
		return nil, err
	}
	loc := &Locale{name: matched, data: data}
	if matched != fallbackName {
		if loc.fallback, err = load(fallbackName); err != nil {
			return nil, err
		}
	}
	slog.Debug("locale bundle loaded", "requested", name, "locale", matched)
	return loc, nil
}

func load(name string) (map[string]any, error) {
	raw, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("locale %s: read bundle: %w", name, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("locale %s: parse bundle: %w", name, err)
	}
	return m, nil
}

// Name returns the matched locale name, which may differ from the tag
// requested in New.
func (l *Locale) Name() string { return l.name }

// Has reports whether key resolves to a non-empty list in this locale or its
// fallback chain. It never fails, so it is safe as a construction-time probe.
func (l *Locale) Has(key string) bool {
	if list, ok := lookup(l.data, key); ok && len(list) > 0 {
		return true
	}
	list, ok := lookup(l.fallback, key)
	return ok && len(list) > 0
}

// GetArray returns the ordered list for key, consulting the fallback chain,
// or an error wrapping ErrUnknownKey when nothing defines it.
func (l *Locale) GetArray(key string) ([]string, error) {
	if list, ok := lookup(l.data, key); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("locale %s: %w: empty list for %q", l.name, ErrUnknownKey, key)
		}
		return list, nil
	}
	if list, ok := lookup(l.fallback, key); ok && len(list) > 0 {
		return list, nil
	}
	return nil, fmt.Errorf("locale %s: %w: %q", l.name, ErrUnknownKey, key)
}

// lookup walks the nested bundle by dotted key and coerces the leaf to a
// string list. A missing path, non-list leaf, or non-string element all
// report !ok rather than failing.
func lookup(data map[string]any, key string) ([]string, bool) {
	if data == nil {
		return nil, false
	}
	var node any = data
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = m[part]; !ok {
			return nil, false
		}
	}
	raw, ok := node.([]any)
	if !ok {
		return nil, false
	}
	list := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		list[i] = s
	}
	return list, true
}
