// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates a configuration file in a list of directories when no
//              explicit path was given.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-03
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-03 v0.2.0: Search order includes the user config directory

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/strview/foundation/core/error"
	"github.com/msto63/strview/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Defaults   map[string]interface{}
	Required   bool // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search order for an application:
// the working directory, ./configs and the user config directory
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{".", "./configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  app,
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	candidates := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidates = append(candidates, filepath.Join(path, filename+ext))
			}
		}
	}
	return candidates
}

// FindConfigFile returns the first existing candidate. The error carries the
// searched paths when nothing was found.
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if filex.IsFile(candidate) {
			return candidate, nil
		}
	}

	return "", mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// Discover finds and loads a configuration file. When none exists and the
// file is not required, an empty configuration serving defaults and
// environment overrides is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}
