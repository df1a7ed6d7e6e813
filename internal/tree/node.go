package tree

import (
	"maps"
	"path"
	"slices"
)

// Node is one entry of a skeleton: either a Dir or a File.
// The interface is sealed; no other implementations exist.
type Node interface {
	isNode()
}

// Dir maps entry names to child nodes.
type Dir map[string]Node

// File is the exact text payload of a file. An empty File produces an
// existing zero-length file.
type File string

func (Dir) isNode()  {}
func (File) isNode() {}

// Kind distinguishes directories from files in events and results.
type Kind int

const (
	// KindDir is a directory entry.
	KindDir Kind = iota
	// KindFile is a file entry.
	KindFile
)

// String returns "dir" or "file".
func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Names returns the entry names of d in sorted order.
func (d Dir) Names() []string {
	return slices.Sorted(maps.Keys(d))
}

// WalkFunc is called for every entry with its slash-separated path relative
// to the walked root. Returning an error stops the walk.
type WalkFunc func(rel string, n Node) error

// Walk visits every entry below d depth-first, parents before children,
// siblings in sorted order.
func Walk(d Dir, fn WalkFunc) error {
	return walk("", d, fn)
}

func walk(prefix string, d Dir, fn WalkFunc) error {
	for _, name := range d.Names() {
		rel := path.Join(prefix, name)
		child := d[name]
		if err := fn(rel, child); err != nil {
			return err
		}
		if sub, ok := child.(Dir); ok {
			if err := walk(rel, sub, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Count returns the number of directories and files below d.
func Count(d Dir) (dirs, files int) {
	_ = Walk(d, func(_ string, n Node) error {
		switch n.(type) {
		case Dir:
			dirs++
		case File:
			files++
		}
		return nil
	})
	return dirs, files
}
