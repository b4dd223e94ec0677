// File: locale.go
// Title: Locale Handling Utilities
// Description: Normalizes locale tags and detects the preferred locale from
//              POSIX environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-07
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with Accept-Language parsing
// - 2026-10-07 v0.2.0: Detection from LC_ALL, LC_MESSAGES and LANG

package i18n

import (
	"os"
	"strings"

	mdwerror "github.com/msto63/strview/foundation/core/error"
)

// EnvLocaleVars lists the variables consulted by FromEnvironment, in order
var EnvLocaleVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// NormalizeLocale normalizes a locale string to "ll" or "ll-CC". Encoding
// and modifier suffixes ("de_DE.UTF-8@euro") are dropped. Invalid input
// yields "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(strings.ToLower(locale), "_", "-")

	parts := strings.Split(locale, "-")
	language := parts[0]
	if (len(language) != 2 && len(language) != 3) || !isLetters(language) {
		return ""
	}

	if len(parts) > 1 && len(parts[1]) == 2 && isLetters(parts[1]) {
		return language + "-" + strings.ToUpper(parts[1])
	}
	return language
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if NormalizeLocale(locale) == "" {
		return mdwerror.New("invalid locale format").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'de', 'en-US'")
	}
	return nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}
	language, country, _ = strings.Cut(normalized, "-")
	return language, country
}

// FromEnvironment returns the first usable locale named by EnvLocaleVars.
// "C" and "POSIX" carry no language and are skipped.
func FromEnvironment() string {
	return DetectLocale(os.Getenv)
}

// DetectLocale is FromEnvironment over an arbitrary lookup function
func DetectLocale(getenv func(string) string) string {
	for _, name := range EnvLocaleVars {
		value := getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if locale := NormalizeLocale(value); locale != "" {
			return locale
		}
	}
	return ""
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
	}
	return true
}
