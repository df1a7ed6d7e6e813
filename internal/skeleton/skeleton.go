// Package skeleton embeds the county-real-estate-platform project layout
// and the auxiliary files written alongside it.
package skeleton

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/county-estate/scaffold/internal/tree"
)

// ProjectName is the directory the layout is materialized into.
const ProjectName = "county-real-estate-platform"

// ErrAssetNotFound indicates a missing embedded asset.
var ErrAssetNotFound = errors.New("skeleton: asset not found")

//go:embed layout.yaml
var layoutYAML []byte

//go:embed assets
var assets embed.FS

// Anchor selects the directory an Emission's Path is relative to.
type Anchor int

const (
	// AnchorProject resolves against the generated project root.
	AnchorProject Anchor = iota
	// AnchorWorkDir resolves against the invocation's working directory.
	AnchorWorkDir
)

// String returns "project" or "workdir".
func (a Anchor) String() string {
	if a == AnchorWorkDir {
		return "workdir"
	}
	return "project"
}

// Emission is one fixed file written outside the layout tree.
type Emission struct {
	Name    string
	Anchor  Anchor
	Path    string // slash-separated, relative to the anchor
	Content string
}

// Layout decodes the embedded project tree.
func Layout() (tree.Dir, error) {
	d, err := tree.Decode(bytes.NewReader(layoutYAML))
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return d, nil
}

// Build returns the project tree and the environment template text.
func Build() (tree.Dir, string, error) {
	root, err := Layout()
	if err != nil {
		return nil, "", err
	}
	env, err := Asset("env.example")
	if err != nil {
		return nil, "", err
	}
	return root, env, nil
}

// Auxiliaries returns the fixed files emitted after the tree, in the order
// they are written. The README is anchored on the working directory, not
// the project root.
func Auxiliaries(env string) ([]Emission, error) {
	gitignore, err := Asset("gitignore")
	if err != nil {
		return nil, err
	}
	ci, err := Asset("ci.yml")
	if err != nil {
		return nil, err
	}
	readme, err := Asset("README.md")
	if err != nil {
		return nil, err
	}

	return []Emission{
		{Name: "env template", Anchor: AnchorProject, Path: ".env.example", Content: env},
		{Name: "ignore file", Anchor: AnchorProject, Path: ".gitignore", Content: gitignore},
		{Name: "CI workflow", Anchor: AnchorProject, Path: ".github/workflows/ci.yml", Content: ci},
		{Name: "README", Anchor: AnchorWorkDir, Path: "README.md", Content: readme},
	}, nil
}

// Asset returns the content of an embedded auxiliary file.
func Asset(name string) (string, error) {
	data, err := fs.ReadFile(assets, path.Join("assets", name))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return string(data), nil
}
