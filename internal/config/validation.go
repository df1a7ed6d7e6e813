package config

import (
	"slices"

	"github.com/county-estate/scaffold/internal/tree"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks cfg and returns *ValidationErrors listing every problem.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if err := tree.ValidateName(cfg.ProjectName); err != nil {
		errs = append(errs, ValidationError{
			Field:   "project_name",
			Message: "must be a single path segment",
			Value:   cfg.ProjectName,
		})
	}
	if _, err := ParsePerm(cfg.DirPerm); err != nil {
		errs = append(errs, ValidationError{Field: "dir_perm", Message: err.Error()})
	}
	if _, err := ParsePerm(cfg.FilePerm); err != nil {
		errs = append(errs, ValidationError{Field: "file_perm", Message: err.Error()})
	}
	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: "must be one of: debug, info, warn, error",
			Value:   cfg.Log.Level,
		})
	}
	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: "must be one of: text, json",
			Value:   cfg.Log.Format,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
