package tree

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// failingFS delegates to OSFS but fails MkdirAll for one path and records
// every write attempt.
type failingFS struct {
	OSFS
	failDir string
	writes  []string
}

func (f *failingFS) MkdirAll(path string, perm fs.FileMode) error {
	if path == f.failDir {
		return errors.New("injected mkdir failure")
	}
	return f.OSFS.MkdirAll(path, perm)
}

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.writes = append(f.writes, name)
	return f.OSFS.WriteFile(name, data, perm)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) error: %v", path, err)
	}
	return string(data)
}

func sampleTree() Dir {
	return Dir{
		"backend": Dir{
			"app": Dir{
				"__init__.py": File(""),
				"main.py":     File("from fastapi import FastAPI\n"),
			},
			"requirements.txt": File("fastapi==0.104.1"),
		},
		"docs":  Dir{},
		"notes": File("中文内容"),
	}
}

func TestMaterialize(t *testing.T) {
	t.Run("two_level_tree", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "x")
		m := NewMaterializer()

		res, err := m.Materialize(context.Background(), base, Dir{"a": Dir{"b.txt": File("hello")}})
		if err != nil {
			t.Fatalf("Materialize error: %v", err)
		}

		info, err := os.Stat(filepath.Join(base, "a"))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory a, err=%v", err)
		}
		if got := readFile(t, filepath.Join(base, "a", "b.txt")); got != "hello" {
			t.Errorf("b.txt = %q, want %q", got, "hello")
		}
		if !slices.Equal(res.Dirs, []string{"a"}) {
			t.Errorf("Dirs = %v, want [a]", res.Dirs)
		}
		if !slices.Equal(res.Files, []string{"a/b.txt"}) {
			t.Errorf("Files = %v, want [a/b.txt]", res.Files)
		}
	})

	t.Run("every_node_exists_with_exact_payload", func(t *testing.T) {
		base := t.TempDir()
		root := sampleTree()

		if _, err := NewMaterializer().Materialize(context.Background(), base, root); err != nil {
			t.Fatalf("Materialize error: %v", err)
		}

		err := Walk(root, func(rel string, n Node) error {
			p := filepath.Join(base, filepath.FromSlash(rel))
			info, err := os.Stat(p)
			if err != nil {
				t.Errorf("%s: %v", rel, err)
				return nil
			}
			switch n := n.(type) {
			case Dir:
				if !info.IsDir() {
					t.Errorf("%s should be a directory", rel)
				}
			case File:
				if got := readFile(t, p); got != string(n) {
					t.Errorf("%s = %q, want %q", rel, got, string(n))
				}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk error: %v", err)
		}
	})

	t.Run("empty_payload_creates_zero_length_file", func(t *testing.T) {
		base := t.TempDir()
		if _, err := NewMaterializer().Materialize(context.Background(), base, Dir{".gitkeep": File("")}); err != nil {
			t.Fatalf("Materialize error: %v", err)
		}
		info, err := os.Stat(filepath.Join(base, ".gitkeep"))
		if err != nil {
			t.Fatalf(".gitkeep should exist: %v", err)
		}
		if info.Size() != 0 {
			t.Errorf(".gitkeep size = %d, want 0", info.Size())
		}
	})

	t.Run("empty_tree_creates_only_base", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "project")
		res, err := NewMaterializer().Materialize(context.Background(), base, Dir{})
		if err != nil {
			t.Fatalf("Materialize error: %v", err)
		}
		entries, err := os.ReadDir(base)
		if err != nil {
			t.Fatalf("base should exist: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("base has %d entries, want 0", len(entries))
		}
		if len(res.Dirs) != 0 || len(res.Files) != 0 {
			t.Errorf("result = %+v, want empty", res)
		}
	})

	t.Run("idempotent_rerun", func(t *testing.T) {
		base := t.TempDir()
		m := NewMaterializer()
		root := sampleTree()

		if _, err := m.Materialize(context.Background(), base, root); err != nil {
			t.Fatalf("first Materialize error: %v", err)
		}
		first := snapshot(t, base)

		if _, err := m.Materialize(context.Background(), base, root); err != nil {
			t.Fatalf("second Materialize error: %v", err)
		}
		second := snapshot(t, base)

		if len(first) != len(second) {
			t.Fatalf("entry count changed: %d -> %d", len(first), len(second))
		}
		for k, v := range first {
			if second[k] != v {
				t.Errorf("%s changed: %q -> %q", k, v, second[k])
			}
		}
	})

	t.Run("overwrites_modified_leaf", func(t *testing.T) {
		base := t.TempDir()
		m := NewMaterializer()
		root := Dir{"a.txt": File("payload"), "empty": File("")}

		if _, err := m.Materialize(context.Background(), base, root); err != nil {
			t.Fatalf("Materialize error: %v", err)
		}
		for _, name := range []string{"a.txt", "empty"} {
			if err := os.WriteFile(filepath.Join(base, name), []byte("edited"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := m.Materialize(context.Background(), base, root); err != nil {
			t.Fatalf("Materialize error: %v", err)
		}
		if got := readFile(t, filepath.Join(base, "a.txt")); got != "payload" {
			t.Errorf("a.txt = %q, want payload", got)
		}
		if got := readFile(t, filepath.Join(base, "empty")); got != "" {
			t.Errorf("empty = %q, want empty", got)
		}
	})

	t.Run("leaves_unrelated_files_untouched", func(t *testing.T) {
		base := t.TempDir()
		if err := os.MkdirAll(filepath.Join(base, "backend"), 0o755); err != nil {
			t.Fatal(err)
		}
		extra := filepath.Join(base, "backend", "local.cfg")
		if err := os.WriteFile(extra, []byte("keep me"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewMaterializer().Materialize(context.Background(), base, sampleTree()); err != nil {
			t.Fatalf("Materialize error: %v", err)
		}
		if got := readFile(t, extra); got != "keep me" {
			t.Errorf("local.cfg = %q, want %q", got, "keep me")
		}
	})

	t.Run("file_where_directory_expected", func(t *testing.T) {
		base := t.TempDir()
		if err := os.WriteFile(filepath.Join(base, "a"), []byte("plain"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewMaterializer().Materialize(context.Background(), base, Dir{"a": Dir{"b.txt": File("hello")}})
		if err == nil {
			t.Fatal("expected error when a plain file blocks a directory")
		}
		if !errors.Is(err, ErrFilesystem) {
			t.Errorf("error = %v, want ErrFilesystem", err)
		}
		var fsErr *FSError
		if !errors.As(err, &fsErr) || fsErr.Op != "mkdir" {
			t.Errorf("error = %#v, want mkdir FSError", err)
		}
		if got := readFile(t, filepath.Join(base, "a")); got != "plain" {
			t.Errorf("blocking file modified: %q", got)
		}
	})

	t.Run("directory_failure_prevents_child_writes", func(t *testing.T) {
		base := t.TempDir()
		ffs := &failingFS{failDir: filepath.Join(base, "backend", "app")}
		m := NewMaterializer(WithFS(ffs))

		_, err := m.Materialize(context.Background(), base, sampleTree())
		if !errors.Is(err, ErrFilesystem) {
			t.Fatalf("error = %v, want ErrFilesystem", err)
		}
		for _, w := range ffs.writes {
			if strings.HasPrefix(w, ffs.failDir) {
				t.Errorf("write attempted under failed directory: %s", w)
			}
		}
	})

	t.Run("stops_at_first_failure", func(t *testing.T) {
		base := t.TempDir()
		ffs := &failingFS{failDir: filepath.Join(base, "backend")}
		m := NewMaterializer(WithFS(ffs))

		if _, err := m.Materialize(context.Background(), base, sampleTree()); err == nil {
			t.Fatal("expected error")
		}
		// "backend" sorts first, so nothing else may be written.
		if len(ffs.writes) != 0 {
			t.Errorf("writes after failure: %v", ffs.writes)
		}
		if _, err := os.Stat(filepath.Join(base, "notes")); !os.IsNotExist(err) {
			t.Errorf("notes should not exist, stat err=%v", err)
		}
	})

	t.Run("rejects_invalid_name", func(t *testing.T) {
		base := t.TempDir()
		_, err := NewMaterializer().Materialize(context.Background(), base, Dir{"a/b": File("x")})
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("error = %v, want ErrInvalidName", err)
		}
	})

	t.Run("context_cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewMaterializer().Materialize(ctx, t.TempDir(), sampleTree())
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("observer_sees_parents_first", func(t *testing.T) {
		var seen []string
		m := NewMaterializer(WithObserver(func(ev Event) { seen = append(seen, ev.Rel) }))
		if _, err := m.Materialize(context.Background(), t.TempDir(), sampleTree()); err != nil {
			t.Fatalf("Materialize error: %v", err)
		}
		pos := make(map[string]int, len(seen))
		for i, rel := range seen {
			pos[rel] = i
		}
		for rel, i := range pos {
			parent := filepath.ToSlash(filepath.Dir(rel))
			if parent == "." {
				continue
			}
			if j, ok := pos[parent]; !ok || j > i {
				t.Errorf("%s reported before its parent %s", rel, parent)
			}
		}
	})
}

func TestMaterializer_WriteFile(t *testing.T) {
	t.Run("creates_parents", func(t *testing.T) {
		base := t.TempDir()
		m := NewMaterializer()
		if err := m.WriteFile(context.Background(), base, ".github/workflows/ci.yml", "name: CI\n"); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
		if got := readFile(t, filepath.Join(base, ".github", "workflows", "ci.yml")); got != "name: CI\n" {
			t.Errorf("ci.yml = %q", got)
		}
	})

	t.Run("rejects_traversal", func(t *testing.T) {
		err := NewMaterializer().WriteFile(context.Background(), t.TempDir(), "../escape.txt", "x")
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("error = %v, want ErrInvalidName", err)
		}
	})

	t.Run("recording_fs_touches_nothing", func(t *testing.T) {
		base := t.TempDir()
		rec := NewRecordingFS()
		m := NewMaterializer(WithFS(rec))
		if err := m.WriteFile(context.Background(), base, "README.md", "# hi"); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(base, "README.md")); !os.IsNotExist(err) {
			t.Errorf("README.md should not exist, stat err=%v", err)
		}
		ops := rec.Ops()
		if len(ops) != 2 || ops[1].Kind != KindFile || ops[1].Size != 4 {
			t.Errorf("ops = %+v", ops)
		}
	})
}

// snapshot maps every path under root to its content ("<dir>" for directories).
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		if d.IsDir() {
			out[rel] = "<dir>"
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		out[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot error: %v", err)
	}
	return out
}
