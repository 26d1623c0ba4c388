// Package config handles loading and saving the todo config.toml file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/todo/task"
)

// Config represents the config.toml configuration file. A missing file
// or missing key falls back to defaults; configuration is never
// required.
type Config struct {
	// DataDir overrides where the tasks document and undo history
	// live. Empty means the default data directory.
	DataDir string `toml:"data_dir"`

	// DefaultPriority is assigned to new tasks created without an
	// explicit priority.
	DefaultPriority task.Priority `toml:"default_priority"`

	// DefaultTags are added to every new task.
	DefaultTags []string `toml:"default_tags"`

	// ShowCompleted includes completed tasks in listings by default.
	ShowCompleted bool `toml:"show_completed"`

	// ColorEnabled allows styled output. Even when true, styling is
	// suppressed off-tty and under NO_COLOR.
	ColorEnabled bool `toml:"color_enabled"`

	// DateFormat is the layout used to render due dates.
	DateFormat string `toml:"date_format"`

	// Editor is the preferred editor command.
	Editor string `toml:"editor"`

	// SortBy is the default listing sort key.
	SortBy task.SortKey `toml:"sort_by"`

	// SortReverse reverses the default listing order.
	SortReverse bool `toml:"sort_reverse"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultPriority: task.PriorityMedium,
		DefaultTags:     []string{},
		ShowCompleted:   false,
		ColorEnabled:    true,
		DateFormat:      "2006-01-02",
		SortBy:          task.SortByCreatedAt,
		SortReverse:     false,
	}
}

// Load reads the configuration at path. A missing file yields the
// defaults. Keys absent from the file keep their default values;
// invalid enum values fail up front.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if !c.DefaultPriority.IsValid() {
		return fmt.Errorf("default_priority: %w", task.ErrInvalidPriority)
	}
	if !c.SortBy.IsValid() {
		return fmt.Errorf("sort_by: %w", task.ErrInvalidSortKey)
	}
	return nil
}

// Keys returns the settable configuration keys in display order.
func Keys() []string {
	keys := []string{
		"data_dir",
		"default_priority",
		"default_tags",
		"show_completed",
		"color_enabled",
		"date_format",
		"editor",
		"sort_by",
		"sort_reverse",
	}
	sort.Strings(keys)
	return keys
}

// Get returns the display value for a configuration key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "data_dir":
		return c.DataDir, nil
	case "default_priority":
		return string(c.DefaultPriority), nil
	case "default_tags":
		return strings.Join(c.DefaultTags, ","), nil
	case "show_completed":
		return strconv.FormatBool(c.ShowCompleted), nil
	case "color_enabled":
		return strconv.FormatBool(c.ColorEnabled), nil
	case "date_format":
		return c.DateFormat, nil
	case "editor":
		return c.Editor, nil
	case "sort_by":
		return string(c.SortBy), nil
	case "sort_reverse":
		return strconv.FormatBool(c.SortReverse), nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set parses and applies a string value to a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_dir":
		c.DataDir = strings.TrimSpace(value)
	case "default_priority":
		priority, err := task.ParsePriority(value)
		if err != nil {
			return err
		}
		c.DefaultPriority = priority
	case "default_tags":
		c.DefaultTags = task.NormalizeTags(strings.Split(value, ","))
	case "show_completed":
		enabled, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.ShowCompleted = enabled
	case "color_enabled":
		enabled, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.ColorEnabled = enabled
	case "date_format":
		c.DateFormat = strings.TrimSpace(value)
	case "editor":
		c.Editor = strings.TrimSpace(value)
	case "sort_by":
		sortBy, err := task.ParseSortKey(value)
		if err != nil {
			return err
		}
		c.SortBy = sortBy
	case "sort_reverse":
		reverse, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.SortReverse = reverse
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%s: expected true or false, got %q", key, value)
	}
	return parsed, nil
}
