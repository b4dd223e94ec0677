// Package i18n looks up translated messages in TOML or YAML catalogs, one
// file per locale, with dotted keys and text/template interpolation.
//
// Package: i18n
// Title: Core Internationalization
// Description: Message catalogs per locale, fallback to a default locale
//              and locale detection from the process environment.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-07
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-07 v0.2.0: Catalogs from fs.FS, locale copies instead of
//                      runtime switching, dropped file watching
//
// Usage:
//
//	//go:embed locales/*.toml
//	var files embed.FS
//
//	m, err := i18n.New(i18n.Options{DefaultLocale: "de", FS: files, Dir: "locales"})
//	en, err := m.WithLocale("en-US")
//	en.T("result.size", map[string]interface{}{"Size": 3})
//
// Keys are dotted paths into nested tables: "labels.found" resolves
// [labels] found = "...". A key missing in the current locale falls back
// to the default locale; a key missing there translates to the key itself.
package i18n
