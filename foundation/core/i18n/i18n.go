// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the Manager: loading TOML and YAML catalogs,
//              dotted key lookup with default locale fallback and
//              template interpolation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-07
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Template cache keys include the locale
// - 2026-10-07 v0.2.0: Catalogs from fs.FS, WithLocale copies

package i18n

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/strview/foundation/core/error"
)

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "de")
	FS            fs.FS  // Catalog source; nil reads from the file system
	Dir           string // Directory of the catalog files within FS
}

// TranslationData represents the structure of a catalog file
type TranslationData map[string]interface{}

// catalog is shared by all copies of a Manager
type catalog struct {
	translations map[string]TranslationData // locale -> translations

	mu        sync.Mutex
	templates map[string]*template.Template // locale/key -> compiled template
}

// Manager translates keys for one current locale. Copies made with
// WithLocale share the loaded catalogs.
type Manager struct {
	defaultLocale string
	currentLocale string
	catalog       *catalog
}

// New loads every .toml, .yaml and .yml file in the catalog directory. The
// file name without extension is the locale.
func New(options Options) (*Manager, error) {
	defaultLocale := NormalizeLocale(options.DefaultLocale)
	if defaultLocale == "" {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.New").
			WithDetail("locale", options.DefaultLocale)
	}

	fsys, dir := options.FS, options.Dir
	if dir == "" {
		dir = "."
	}
	if fsys == nil {
		fsys, dir = os.DirFS(dir), "."
	}

	translations, err := loadAll(fsys, dir)
	if err != nil {
		return nil, err
	}
	if _, ok := translations[defaultLocale]; !ok {
		return nil, mdwerror.New("default locale not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("locale", defaultLocale).
			WithDetail("directory", dir)
	}

	return &Manager{
		defaultLocale: defaultLocale,
		currentLocale: defaultLocale,
		catalog: &catalog{
			translations: translations,
			templates:    make(map[string]*template.Template),
		},
	}, nil
}

func loadAll(fsys fs.FS, dir string) (map[string]TranslationData, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, mdwerror.Wrap(err, "locales directory not readable").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("directory", dir)
	}

	translations := make(map[string]TranslationData)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		locale := NormalizeLocale(strings.TrimSuffix(name, path.Ext(name)))
		if locale == "" {
			continue
		}

		var unmarshal func([]byte, interface{}) error
		switch ext {
		case ".toml":
			unmarshal = toml.Unmarshal
		case ".yaml", ".yml":
			unmarshal = yaml.Unmarshal
		default:
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to read locale file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("i18n.New").
				WithDetail("file", name)
		}

		var data TranslationData
		if err := unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse locale file").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("i18n.New").
				WithDetail("file", name)
		}
		translations[locale] = data
	}
	return translations, nil
}

// WithLocale returns a copy translating into locale. An unknown regional
// variant falls back to its language ("de-AT" -> "de").
func (m *Manager) WithLocale(locale string) (*Manager, error) {
	resolved := m.resolve(locale)
	if resolved == "" {
		return nil, mdwerror.New("locale not available").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.WithLocale").
			WithDetail("locale", locale).
			WithDetail("available", strings.Join(m.Locales(), ", "))
	}

	clone := *m
	clone.currentLocale = resolved
	return &clone, nil
}

func (m *Manager) resolve(locale string) string {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return ""
	}
	if _, ok := m.catalog.translations[normalized]; ok {
		return normalized
	}
	language, _ := SplitLocale(normalized)
	if _, ok := m.catalog.translations[language]; ok {
		return language
	}
	return ""
}

// T translates a key with optional template data
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, _ := m.TryT(key, data...)
	return translation
}

// TryT translates a key and returns an error if translation fails. The
// key itself is returned alongside the error.
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	locale, translation := m.lookup(key)
	if locale == "" {
		return key, mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", m.currentLocale)
	}

	if len(data) == 0 || data[0] == nil {
		return translation, nil
	}

	rendered, err := m.catalog.render(locale+"/"+key, translation, data[0])
	if err != nil {
		return translation, mdwerror.Wrap(err, "template rendering failed").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}
	return rendered, nil
}

// TWithFallback translates a key, returning fallbackMsg when it is missing
func (m *Manager) TWithFallback(key, fallbackMsg string, data ...map[string]interface{}) string {
	if translation, err := m.TryT(key, data...); err == nil {
		return translation
	}
	return fallbackMsg
}

// HasTranslation reports whether key resolves in the current or default locale
func (m *Manager) HasTranslation(key string) bool {
	locale, _ := m.lookup(key)
	return locale != ""
}

// CurrentLocale returns the locale T translates into
func (m *Manager) CurrentLocale() string {
	return m.currentLocale
}

// DefaultLocale returns the fallback locale
func (m *Manager) DefaultLocale() string {
	return m.defaultLocale
}

// Locales returns the loaded locales in sorted order
func (m *Manager) Locales() []string {
	locales := make([]string, 0, len(m.catalog.translations))
	for locale := range m.catalog.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Keys returns every translation key of the default locale in sorted order
func (m *Manager) Keys() []string {
	keys := collectKeys(m.catalog.translations[m.defaultLocale], "")
	sort.Strings(keys)
	return keys
}

// lookup returns the locale the key was found in and its message
func (m *Manager) lookup(key string) (string, string) {
	for _, locale := range []string{m.currentLocale, m.defaultLocale} {
		if value, ok := nestedValue(m.catalog.translations[locale], key); ok {
			return locale, value
		}
	}
	return "", ""
}

func (c *catalog) render(name, text string, data map[string]interface{}) (string, error) {
	c.mu.Lock()
	tmpl, ok := c.templates[name]
	if !ok {
		var err error
		if tmpl, err = template.New(name).Option("missingkey=error").Parse(text); err != nil {
			c.mu.Unlock()
			return text, err
		}
		c.templates[name] = tmpl
	}
	c.mu.Unlock()

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return text, err
	}
	return b.String(), nil
}

// nestedValue resolves a dotted key. Only string leaves count as messages.
func nestedValue(data map[string]interface{}, key string) (string, bool) {
	current := data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return "", false
		}
		if i == len(keys)-1 {
			s, ok := value.(string)
			return s, ok
		}
		switch next := value.(type) {
		case map[string]interface{}:
			current = next
		case TranslationData:
			current = next
		default:
			return "", false
		}
	}
	return "", false
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string
	for k, v := range data {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		switch next := v.(type) {
		case map[string]interface{}:
			keys = append(keys, collectKeys(next, full)...)
		case string:
			keys = append(keys, full)
		}
	}
	return keys
}
