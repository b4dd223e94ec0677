// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration into a
//              key-value tree with dotted-key access and environment
//              variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-03
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-03 v0.2.0: Discovery over the user config directory

/*
Package config provides configuration loading for strview tools.

Files are parsed with github.com/BurntSushi/toml or gopkg.in/yaml.v3; the
format follows the file extension (.toml, .yaml, .yml) unless set
explicitly. Values are addressed with dotted keys:

	cfg, err := config.Load("strview.toml")
	if err != nil {
		return err
	}
	width := cfg.GetString("query.width", "8")

Environment overrides are enabled by an env prefix. With prefix "strview"
the key general.log_level is overridden by STRVIEW_GENERAL_LOG_LEVEL.
Environment values win over file values, which win over defaults.

Discover searches a list of directories for the first existing file and
falls back to defaults when none is required.

Errors are *error.Error values from foundation/core/error with codes
NOT_FOUND, MISSING_CONFIG, INVALID_CONFIG or CONFIG_ERROR.

All accessors are safe for concurrent use.
*/
package config
