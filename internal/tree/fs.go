package tree

import (
	"io/fs"
	"os"
	"sync"
)

// FS is the set of filesystem operations the Materializer performs.
// Each call opens and releases its own handle.
type FS interface {
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSFS writes to the real filesystem through package os.
type OSFS struct{}

// MkdirAll creates path and any missing parents.
func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFile creates or truncates name and writes data to it.
func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Op is one operation captured by a RecordingFS.
type Op struct {
	Kind Kind
	Path string
	Size int
}

// RecordingFS captures operations without touching the disk. It backs
// dry runs and previews.
type RecordingFS struct {
	mu  sync.Mutex
	ops []Op
}

// NewRecordingFS returns an empty RecordingFS.
func NewRecordingFS() *RecordingFS {
	return &RecordingFS{}
}

// MkdirAll records a directory creation.
func (r *RecordingFS) MkdirAll(path string, _ fs.FileMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, Op{Kind: KindDir, Path: path})
	return nil
}

// WriteFile records a file write.
func (r *RecordingFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, Op{Kind: KindFile, Path: name, Size: len(data)})
	return nil
}

// Ops returns a copy of the recorded operations in call order.
func (r *RecordingFS) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}
