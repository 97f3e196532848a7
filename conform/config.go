// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package conform

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.astrophena.name/checksources/txtar"
)

// ConfigFile is the name of the optional configuration archive at the
// project root. It is a txtar archive that can hold a config.json file.
const ConfigFile = ".checksources.txtar"

// Config controls a run. It is built once at startup and not modified
// afterwards.
type Config struct {
	// Root is the project root. Relative paths embedded in files are
	// relative to it.
	Root string
	// SourceDirs are walked recursively, relative to Root.
	SourceDirs []string
	// Fix enables writing corrected files back to disk.
	Fix bool
	// Backup keeps a copy of every file before it is replaced.
	Backup bool
	// Extensions are the recognized file extensions, including the dot.
	Extensions []string
	// HeaderExtensions are the extensions of header files.
	HeaderExtensions []string
	// Exclusions are suffixes of project-relative paths to skip.
	Exclusions []string
	// Project and Author are used in generated license blocks.
	Project string
	Author  string
	// GuardPrefix is the prefix of include guard names.
	GuardPrefix string
	// Checks enables or disables checks by name. Checks not mentioned
	// use their defaults.
	Checks map[string]bool
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultConfig returns the configuration used when the project has no
// configuration file.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:             root,
		SourceDirs:       []string{"src"},
		Fix:              true,
		Extensions:       []string{".h", ".hpp", ".cpp"},
		HeaderExtensions: []string{".h", ".hpp"},
		Project:          "Simulatore Relais Apparato",
		Author:           "Filippo Gentile",
		GuardPrefix:      "TRAINTASTIC",
		Checks:           make(map[string]bool),
	}
}

type fileConfig struct {
	SourceDirs       []string        `json:"source_dirs"`
	Extensions       []string        `json:"extensions"`
	HeaderExtensions []string        `json:"header_extensions"`
	Exclusions       []string        `json:"exclusions"`
	Project          string          `json:"project"`
	Author           string          `json:"author"`
	GuardPrefix      string          `json:"guard_prefix"`
	Checks           map[string]bool `json:"checks"`
}

// LoadConfig returns the default configuration for root, overridden by the
// contents of root's [ConfigFile] if there is one.
func LoadConfig(root string) (*Config, error) {
	cfg := DefaultConfig(root)

	ar, err := txtar.ParseFile(filepath.Join(root, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		if f.Name != "config.json" {
			continue
		}
		var fc fileConfig
		if err := json.Unmarshal(f.Data, &fc); err != nil {
			return nil, fmt.Errorf("%s: config.json: %w", ConfigFile, err)
		}
		if err := cfg.merge(&fc); err != nil {
			return nil, fmt.Errorf("%s: config.json: %w", ConfigFile, err)
		}
	}
	return cfg, nil
}

func (cfg *Config) merge(fc *fileConfig) error {
	for name := range fc.Checks {
		if _, ok := defaultChecks[name]; !ok {
			return fmt.Errorf("unknown check %q", name)
		}
	}
	if len(fc.SourceDirs) > 0 {
		cfg.SourceDirs = fc.SourceDirs
	}
	if len(fc.Extensions) > 0 {
		cfg.Extensions = fc.Extensions
	}
	if len(fc.HeaderExtensions) > 0 {
		cfg.HeaderExtensions = fc.HeaderExtensions
	}
	cfg.Exclusions = append(cfg.Exclusions, fc.Exclusions...)
	if fc.Project != "" {
		cfg.Project = fc.Project
	}
	if fc.Author != "" {
		cfg.Author = fc.Author
	}
	if fc.GuardPrefix != "" {
		cfg.GuardPrefix = fc.GuardPrefix
	}
	for name, on := range fc.Checks {
		cfg.Checks[name] = on
	}
	return nil
}

// Enabled reports whether the named check runs.
func (cfg *Config) Enabled(name string) bool {
	if on, ok := cfg.Checks[name]; ok {
		return on
	}
	return defaultChecks[name]
}

// Enable turns the named check on.
func (cfg *Config) Enable(name string) {
	if cfg.Checks == nil {
		cfg.Checks = make(map[string]bool)
	}
	cfg.Checks[name] = true
}

func (cfg *Config) isExcluded(rel string) bool {
	for _, ex := range cfg.Exclusions {
		if strings.HasSuffix(rel, ex) {
			return true
		}
	}
	return false
}

// classify reports whether a file called name is checked and whether it is
// a header.
func (cfg *Config) classify(name string) (recognized, header bool) {
	recognized = slices.ContainsFunc(cfg.Extensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
	header = slices.ContainsFunc(cfg.HeaderExtensions, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
	return recognized, recognized && header
}

func (cfg *Config) now() time.Time {
	if cfg.Now != nil {
		return cfg.Now()
	}
	return time.Now()
}
