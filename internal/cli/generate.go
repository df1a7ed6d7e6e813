package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/county-estate/scaffold/internal/config"
	"github.com/county-estate/scaffold/internal/core/scaffold"
	"github.com/county-estate/scaffold/internal/ui"
)

// ErrCancelled is returned when the user declines the overwrite prompt.
var ErrCancelled = errors.New("generation cancelled by user")

type generateFlags struct {
	dir             string
	name            string
	readmeInProject bool
	dryRun          bool
	confirm         bool
	configPath      string
	verbose         bool
	logFormat       string
}

// Replaced in tests.
var (
	newHeadlessManager = ui.NewHeadlessManager
	confirmOverwrite   = askOverwrite
)

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg, f)
	if err != nil {
		return err
	}

	dirPerm, filePerm, err := cfg.Perms()
	if err != nil {
		return err
	}
	workDir, err := filepath.Abs(f.dir)
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	opts := scaffold.Options{
		WorkDir:         workDir,
		ProjectName:     cfg.ProjectName,
		ReadmeInProject: cfg.ReadmeInProject,
		DryRun:          f.dryRun,
		DirPerm:         dirPerm,
		FilePerm:        filePerm,
	}

	hm := newHeadlessManager()
	if f.confirm && !f.dryRun {
		ok, err := confirmExisting(cmd, hm, filepath.Join(workDir, opts.ProjectName), logger)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cliMuted.Render("Nothing written."))
			return ErrCancelled
		}
	}

	progress := ui.NewProgressWithWriter(ui.DefaultTheme(), hm, cmd.ErrOrStderr())
	result, err := scaffold.NewGenerator(logger, progress).Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSummary(result))
	return nil
}

// loadConfig reads the config file, if any, and applies explicitly set
// flags on top of it.
func loadConfig(cmd *cobra.Command, f *generateFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.ProjectName = f.name
	}
	if flags.Changed("readme-in-project") {
		cfg.ReadmeInProject = f.readmeInProject
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a discard logger unless verbose output or a log format
// was requested.
func newLogger(w io.Writer, cfg *config.Config, f *generateFlags) (*slog.Logger, error) {
	if !f.verbose && f.logFormat == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.Log.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", config.ErrInvalidConfig, cfg.Log.Format)
	}
}

// confirmExisting asks before writing into a project root that already
// exists. Without a terminal the prompt is skipped.
func confirmExisting(cmd *cobra.Command, hm *ui.HeadlessManager, root string, logger *slog.Logger) (bool, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("stat project root: %w", err)
	}
	if hm.IsHeadless() {
		logger.Warn("skipping confirmation without a terminal", "root", root)
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cliWarn.Render("--confirm ignored: no terminal"))
		return true, nil
	}
	return confirmOverwrite(root)
}

func askOverwrite(root string) (bool, error) {
	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("%s already exists. Overwrite generated files?", root)).
			Description("Files not part of the skeleton are left untouched.").
			Affirmative("Overwrite").
			Negative("Cancel").
			Value(&ok),
	)).WithTheme(huh.ThemeBase())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return ok, nil
}
