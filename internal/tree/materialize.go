package tree

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
)

// Default permissions for created entries.
const (
	DefaultDirPerm  fs.FileMode = 0o755
	DefaultFilePerm fs.FileMode = 0o644
)

// Event reports one completed directory creation or file write.
type Event struct {
	Kind Kind
	Rel  string // slash-separated, relative to the base directory
	Path string // filesystem path as passed to FS
	Size int    // payload length in bytes; zero for directories
}

// Result lists the entries written by Materialize, in write order.
type Result struct {
	Dirs  []string
	Files []string
}

// Materializer writes a Dir tree onto a filesystem.
type Materializer struct {
	fsys     FS
	logger   *slog.Logger
	dirPerm  fs.FileMode
	filePerm fs.FileMode
	observe  func(Event)
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithFS replaces the default OSFS.
func WithFS(fsys FS) Option {
	return func(m *Materializer) { m.fsys = fsys }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Materializer) { m.logger = logger }
}

// WithPerms sets the permissions for new directories and files.
// Zero values keep the defaults.
func WithPerms(dir, file fs.FileMode) Option {
	return func(m *Materializer) {
		if dir != 0 {
			m.dirPerm = dir
		}
		if file != 0 {
			m.filePerm = file
		}
	}
}

// WithObserver registers fn to be called after every successful write.
func WithObserver(fn func(Event)) Option {
	return func(m *Materializer) { m.observe = fn }
}

// NewMaterializer creates a Materializer writing through OSFS unless
// configured otherwise.
func NewMaterializer(opts ...Option) *Materializer {
	m := &Materializer{
		fsys:     OSFS{},
		dirPerm:  DefaultDirPerm,
		filePerm: DefaultFilePerm,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m
}

// Materialize creates base and every entry of root beneath it. Directories
// are created before anything inside them, and an existing directory is
// not an error. Every file is overwritten with its payload; files not named
// in root are left alone. The first failure stops the walk and whatever
// was already written stays on disk.
func (m *Materializer) Materialize(ctx context.Context, base string, root Dir) (*Result, error) {
	base = filepath.Clean(base)
	if err := m.mkdir(base); err != nil {
		return nil, err
	}

	res := &Result{}
	if err := m.materializeDir(ctx, base, "", root, res); err != nil {
		return nil, err
	}

	m.logger.Debug("tree materialized",
		"base", base,
		"dirs", len(res.Dirs),
		"files", len(res.Files),
	)
	return res, nil
}

func (m *Materializer) materializeDir(ctx context.Context, dir, rel string, d Dir, res *Result) error {
	for _, name := range d.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ValidateName(name); err != nil {
			return fmt.Errorf("%s: %w", path.Join(rel, name), err)
		}

		full := filepath.Join(dir, name)
		childRel := path.Join(rel, name)

		switch child := d[name].(type) {
		case Dir:
			if err := m.mkdir(full); err != nil {
				return err
			}
			res.Dirs = append(res.Dirs, childRel)
			m.emit(Event{Kind: KindDir, Rel: childRel, Path: full})
			if err := m.materializeDir(ctx, full, childRel, child, res); err != nil {
				return err
			}
		case File:
			if err := m.write(full, string(child)); err != nil {
				return err
			}
			res.Files = append(res.Files, childRel)
			m.emit(Event{Kind: KindFile, Rel: childRel, Path: full, Size: len(child)})
		default:
			return fmt.Errorf("%w: %s has no node", ErrInvalidLayout, childRel)
		}
	}
	return nil
}

// WriteFile writes content to rel (slash-separated) under base, creating
// parent directories as needed.
func (m *Materializer) WriteFile(ctx context.Context, base, rel, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for seg := range strings.SplitSeq(rel, "/") {
		if err := ValidateName(seg); err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
	}

	full := filepath.Join(filepath.Clean(base), filepath.FromSlash(rel))
	if err := m.write(full, content); err != nil {
		return err
	}
	m.emit(Event{Kind: KindFile, Rel: rel, Path: full, Size: len(content)})
	return nil
}

func (m *Materializer) mkdir(p string) error {
	if err := m.fsys.MkdirAll(p, m.dirPerm); err != nil {
		return &FSError{Op: "mkdir", Path: p, Err: err}
	}
	m.logger.Debug("dir", "path", p)
	return nil
}

func (m *Materializer) write(p, content string) error {
	if err := m.mkdir(filepath.Dir(p)); err != nil {
		return err
	}
	if err := m.fsys.WriteFile(p, []byte(content), m.filePerm); err != nil {
		return &FSError{Op: "write", Path: p, Err: err}
	}
	m.logger.Debug("file", "path", p, "bytes", len(content))
	return nil
}

func (m *Materializer) emit(ev Event) {
	if m.observe != nil {
		m.observe(ev)
	}
}
