// File: i18n_test.go
// Title: Internationalization Tests
// Description: Tests for catalog loading, lookup with fallback, templates
//              and locale handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-07
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-07 v0.2.0: In-memory catalogs, environment detection

package i18n

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	mdwerror "github.com/msto63/strview/foundation/core/error"
)

func testCatalogs() fstest.MapFS {
	return fstest.MapFS{
		"locales/de.toml": {Data: []byte(`
[labels]
found = "Gefunden"
only_de = "Nur deutsch"

[result]
size = "Größe {{.Size}}"
`)},
		"locales/en.yaml": {Data: []byte(`
labels:
  found: Found
result:
  size: "size {{.Size}}"
`)},
		"locales/README.md": {Data: []byte("not a catalog")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "de", FS: testCatalogs(), Dir: "locales"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNew(t *testing.T) {
	m := newTestManager(t)

	if got := m.Locales(); !reflect.DeepEqual(got, []string{"de", "en"}) {
		t.Errorf("Locales() = %v, want [de en]", got)
	}
	if m.CurrentLocale() != "de" || m.DefaultLocale() != "de" {
		t.Errorf("locales = %q/%q, want de/de", m.CurrentLocale(), m.DefaultLocale())
	}
	want := []string{"labels.found", "labels.only_de", "result.size"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		wantCode mdwerror.Code
	}{
		{"empty default", Options{FS: testCatalogs(), Dir: "locales"}, mdwerror.CodeValidationFailed},
		{"missing default", Options{DefaultLocale: "fr", FS: testCatalogs(), Dir: "locales"}, mdwerror.CodeNotFound},
		{"missing dir", Options{DefaultLocale: "de", FS: testCatalogs(), Dir: "nope"}, mdwerror.CodeNotFound},
		{
			"broken file",
			Options{DefaultLocale: "de", FS: fstest.MapFS{"l/de.toml": {Data: []byte("[labels")}}, Dir: "l"},
			mdwerror.CodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.options)
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("New() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestNewFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), []byte("hello = \"Hello\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	m, err := New(Options{DefaultLocale: "en", Dir: dir})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := m.T("hello"); got != "Hello" {
		t.Errorf("T(hello) = %q", got)
	}
}

func TestT(t *testing.T) {
	de := newTestManager(t)
	en, err := de.WithLocale("en_US.UTF-8")
	if err != nil {
		t.Fatalf("WithLocale() error = %v", err)
	}

	tests := []struct {
		name string
		m    *Manager
		key  string
		data map[string]interface{}
		want string
	}{
		{"default locale", de, "labels.found", nil, "Gefunden"},
		{"current locale", en, "labels.found", nil, "Found"},
		{"fallback to default", en, "labels.only_de", nil, "Nur deutsch"},
		{"template", de, "result.size", map[string]interface{}{"Size": 3}, "Größe 3"},
		{"template in yaml", en, "result.size", map[string]interface{}{"Size": 3}, "size 3"},
		{"missing key", en, "labels.nope", nil, "labels.nope"},
		{"table is not a message", de, "labels", nil, "labels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.T(tt.key, tt.data); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if de.CurrentLocale() != "de" {
		t.Errorf("WithLocale changed the receiver: %q", de.CurrentLocale())
	}
}

func TestTryTErrors(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.TryT("labels.nope"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing key error = %v", err)
	}
	if _, err := m.TryT("result.size", map[string]interface{}{}); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("missing template data error = %v", err)
	}
	if got := m.TWithFallback("labels.nope", "fallback"); got != "fallback" {
		t.Errorf("TWithFallback() = %q", got)
	}
	if !m.HasTranslation("labels.found") || m.HasTranslation("labels.nope") {
		t.Error("HasTranslation() mismatch")
	}
}

func TestWithLocale(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		locale  string
		want    string
		wantErr bool
	}{
		{"en", "en", false},
		{"de-AT", "de", false},
		{"EN_gb", "en", false},
		{"fr", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := m.WithLocale(tt.locale)
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
					t.Errorf("WithLocale(%q) error = %v, want NOT_FOUND", tt.locale, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("WithLocale(%q) error = %v", tt.locale, err)
			}
			if got.CurrentLocale() != tt.want {
				t.Errorf("CurrentLocale() = %q, want %q", got.CurrentLocale(), tt.want)
			}
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"de", "de"},
		{"DE_de", "de-DE"},
		{"en-us", "en-US"},
		{"de_DE.UTF-8", "de-DE"},
		{"de_DE@euro", "de-DE"},
		{"gsw-CH", "gsw-CH"},
		{"en-419", "en"},
		{"x", ""},
		{"12", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLocale(tt.input); got != tt.want {
				t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if lang, country := SplitLocale("de_CH"); lang != "de" || country != "CH" {
		t.Errorf("SplitLocale(de_CH) = %q, %q", lang, country)
	}
	if err := ValidateLocale("?"); !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("ValidateLocale(?) error = %v", err)
	}
	if err := ValidateLocale("en"); err != nil {
		t.Errorf("ValidateLocale(en) error = %v", err)
	}
}

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"LANG", map[string]string{"LANG": "de_DE.UTF-8"}, "de-DE"},
		{"LC_ALL wins", map[string]string{"LC_ALL": "en_GB.UTF-8", "LANG": "de_DE.UTF-8"}, "en-GB"},
		{"C skipped", map[string]string{"LC_ALL": "C", "LANG": "fr_FR"}, "fr-FR"},
		{"nothing", map[string]string{"LANG": "POSIX"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if got := DetectLocale(getenv); got != tt.want {
				t.Errorf("DetectLocale() = %q, want %q", got, tt.want)
			}
		})
	}
}

func BenchmarkT(b *testing.B) {
	m, err := New(Options{DefaultLocale: "de", FS: testCatalogs(), Dir: "locales"})
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	data := map[string]interface{}{"Size": 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.T("result.size", data)
	}
}
