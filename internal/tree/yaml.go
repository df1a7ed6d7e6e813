package tree

import (
	"errors"
	"fmt"
	"io"
	"path"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML layout from r. Mappings become directories and
// scalars become files; a null scalar is an empty file. An empty document
// decodes to an empty Dir.
func Decode(r io.Reader) (Dir, error) {
	var d Dir
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return Dir{}, nil
		}
		if errors.Is(err, ErrInvalidLayout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if d == nil {
		d = Dir{}
	}
	return d, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dir) UnmarshalYAML(value *yaml.Node) error {
	dir, err := decodeDir(value, ".")
	if err != nil {
		return err
	}
	*d = dir
	return nil
}

func decodeDir(n *yaml.Node, at string) (Dir, error) {
	if n.Kind != yaml.MappingNode {
		return nil, layoutError(n, at, "expected a mapping")
	}
	d := make(Dir, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || k.ShortTag() == "!!merge" {
			return nil, layoutError(k, at, "keys must be plain names")
		}
		name := k.Value
		if err := ValidateName(name); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidLayout, k.Line, err)
		}
		if _, dup := d[name]; dup {
			return nil, layoutError(k, at, fmt.Sprintf("duplicate entry %q", name))
		}
		child, err := decodeNode(v, path.Join(at, name))
		if err != nil {
			return nil, err
		}
		d[name] = child
	}
	return d, nil
}

func decodeNode(n *yaml.Node, at string) (Node, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return decodeDir(n, at)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return File(""), nil
		}
		return File(n.Value), nil
	default:
		return nil, layoutError(n, at, "only mappings and scalars are allowed")
	}
}

func layoutError(n *yaml.Node, at, msg string) error {
	return fmt.Errorf("%w: line %d (%s): %s", ErrInvalidLayout, n.Line, at, msg)
}
