package config

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/county-estate/scaffold/internal/skeleton"
)

// Default value constants.
const (
	DefaultDirPerm   = "0755"
	DefaultFilePerm  = "0644"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the scaffold configuration.
type Config struct {
	// ProjectName is the directory created under the working directory.
	ProjectName string `yaml:"project_name"`
	// ReadmeInProject writes README.md into the project root instead of
	// the working directory.
	ReadmeInProject bool      `yaml:"readme_in_project"`
	DirPerm         string    `yaml:"dir_perm"`
	FilePerm        string    `yaml:"file_perm"`
	Log             LogConfig `yaml:"log"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ProjectName: skeleton.ProjectName,
		DirPerm:     DefaultDirPerm,
		FilePerm:    DefaultFilePerm,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Perms returns the parsed directory and file permissions.
func (c *Config) Perms() (dir, file fs.FileMode, err error) {
	if dir, err = ParsePerm(c.DirPerm); err != nil {
		return 0, 0, fmt.Errorf("dir_perm: %w", err)
	}
	if file, err = ParsePerm(c.FilePerm); err != nil {
		return 0, 0, fmt.Errorf("file_perm: %w", err)
	}
	return dir, file, nil
}

// SlogLevel maps Log.Level to a slog.Level. Unknown values map to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParsePerm parses an octal permission such as "0755", "755" or "0o755".
func ParsePerm(s string) (fs.FileMode, error) {
	ss := strings.TrimSpace(s)
	ss = strings.TrimPrefix(strings.TrimPrefix(ss, "0o"), "0O")
	if ss == "" {
		return 0, fmt.Errorf("empty permission")
	}
	u, err := strconv.ParseUint(ss, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if u > 0o777 {
		return 0, fmt.Errorf("permission %q out of range", s)
	}
	return fs.FileMode(u), nil
}
