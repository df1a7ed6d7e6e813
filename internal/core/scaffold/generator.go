package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/county-estate/scaffold/internal/skeleton"
	"github.com/county-estate/scaffold/internal/tree"
	"github.com/county-estate/scaffold/internal/ui"
)

// Options configures a generation run.
type Options struct {
	WorkDir         string      // Directory the project root is created in. Required.
	ProjectName     string      // Project root directory name. Defaults to skeleton.ProjectName.
	ReadmeInProject bool        // Write README.md into the project root instead of WorkDir.
	DryRun          bool        // Record what would be written without touching disk.
	DirPerm         fs.FileMode // Zero keeps tree.DefaultDirPerm.
	FilePerm        fs.FileMode // Zero keeps tree.DefaultFilePerm.
}

// EmittedFile is an auxiliary file written after the tree.
type EmittedFile struct {
	Name   string
	Anchor skeleton.Anchor
	Path   string
}

// Result summarizes a generation run.
type Result struct {
	ProjectRoot  string        // Absolute or WorkDir-relative project root.
	CreatedDirs  []string      // Tree directories, relative to ProjectRoot.
	CreatedFiles []string      // Tree files, relative to ProjectRoot.
	Emitted      []EmittedFile // Auxiliary files in write order.
	DryRun       bool
	Ops          []tree.Op // Recorded operations; set only for dry runs.
}

// Generator produces the project skeleton on disk.
type Generator interface {
	// Generate runs build, materialize, and emit in sequence. The first
	// failure is returned and nothing after it runs.
	Generate(ctx context.Context, opts Options) (*Result, error)
}

// generator is the concrete implementation of Generator.
type generator struct {
	logger   *slog.Logger
	progress ui.Progress
}

// NewGenerator creates a Generator. A nil logger discards output and a nil
// progress reports nothing.
func NewGenerator(logger *slog.Logger, progress ui.Progress) Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if progress == nil {
		progress = ui.NopProgress{}
	}
	return &generator{logger: logger, progress: progress}
}

// Generate implements Generator.
func (g *generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.WorkDir == "" {
		return nil, ErrInvalidWorkDir
	}
	name := opts.ProjectName
	if name == "" {
		name = skeleton.ProjectName
	}
	if err := tree.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProjectName, err)
	}

	workDir := filepath.Clean(opts.WorkDir)
	projectRoot := filepath.Join(workDir, name)

	// Step 1: build the structure definition
	root, env, err := skeleton.Build()
	if err != nil {
		return nil, fmt.Errorf("build structure: %w", err)
	}
	auxs, err := skeleton.Auxiliaries(env)
	if err != nil {
		return nil, fmt.Errorf("build auxiliaries: %w", err)
	}

	dirs, files := tree.Count(root)
	bar := g.progress.Start("Generating "+name, dirs+files+len(auxs))
	defer bar.Done()

	mopts := []tree.Option{
		tree.WithLogger(g.logger),
		tree.WithPerms(opts.DirPerm, opts.FilePerm),
		tree.WithObserver(func(ev tree.Event) {
			bar.SetTitle(ev.Rel)
			bar.Increment(1)
		}),
	}
	var rec *tree.RecordingFS
	if opts.DryRun {
		rec = tree.NewRecordingFS()
		mopts = append(mopts, tree.WithFS(rec))
	}
	m := tree.NewMaterializer(mopts...)

	g.logger.Info("generating project",
		"root", projectRoot,
		"dirs", dirs,
		"files", files,
		"dryRun", opts.DryRun,
	)

	// Step 2: materialize the tree under the project root
	tr, err := m.Materialize(ctx, projectRoot, root)
	if err != nil {
		return nil, fmt.Errorf("materialize %s: %w", projectRoot, err)
	}

	result := &Result{
		ProjectRoot:  projectRoot,
		CreatedDirs:  tr.Dirs,
		CreatedFiles: tr.Files,
		DryRun:       opts.DryRun,
	}

	// Step 3: emit auxiliary files
	for _, e := range auxs {
		base := projectRoot
		if e.Anchor == skeleton.AnchorWorkDir && !opts.ReadmeInProject {
			base = workDir
		}
		if err := m.WriteFile(ctx, base, e.Path, e.Content); err != nil {
			return nil, fmt.Errorf("emit %s: %w", e.Name, err)
		}
		result.Emitted = append(result.Emitted, EmittedFile{
			Name:   e.Name,
			Anchor: e.Anchor,
			Path:   filepath.Join(base, filepath.FromSlash(e.Path)),
		})
	}

	if rec != nil {
		result.Ops = rec.Ops()
	}

	g.logger.Info("project generated",
		"root", projectRoot,
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"emitted", len(result.Emitted),
	)
	return result, nil
}
