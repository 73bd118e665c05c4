package fstree

import (
	"path"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/parse"
)

// Builder replays commands and grows a Tree. The current directory is a path,
// so moving around is a lookup in the tree.
type Builder struct {
	tree *Tree
	cwd  string
}

func NewBuilder() *Builder {
	return &Builder{tree: newTree()}
}

// Cwd returns the current directory, or an empty string before the first cd /.
func (b *Builder) Cwd() string {
	return b.cwd
}

// Apply replays cmd. The first command must be cd /. cd into a directory that
// was never listed creates it.
func (b *Builder) Apply(cmd Command) error {
	if b.cwd == "" && (cmd.Name != "cd" || cmd.Arg != Root) {
		return ErrNoRoot
	}

	switch cmd.Name {
	case "cd":
		return b.cd(cmd.Arg)
	case "ls":
		return b.ls(cmd.Output)
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", cmd.Name)
	}
}

func (b *Builder) cd(arg string) error {
	switch arg {
	case Root:
		err := b.tree.add(Node{Path: Root, Kind: Dir})
		if err != nil {
			return err
		}

		b.cwd = Root
	case "..":
		if b.cwd == Root {
			return ErrAboveRoot
		}

		b.cwd = path.Dir(b.cwd)
	default:
		name, err := parse.Name(arg)
		if err != nil {
			return err
		}

		dir := Join(b.cwd, name)

		err = b.tree.add(Node{Path: dir, Kind: Dir})
		if err != nil {
			return err
		}

		b.cwd = dir
	}

	return nil
}

func (b *Builder) ls(output []string) error {
	for _, line := range output {
		node, err := b.entry(line)
		if err != nil {
			return err
		}

		err = b.tree.add(node)
		if err != nil {
			return err
		}
	}

	return nil
}

// entry parses one ls line: "dir <name>" or "<size> <name>".
func (b *Builder) entry(line string) (Node, error) {
	fields, err := parse.Fields(line, " ", 2)
	if err != nil {
		return Node{}, err
	}

	name, err := parse.Name(fields[1])
	if err != nil {
		return Node{}, err
	}

	p := Join(b.cwd, name)
	if fields[0] == "dir" {
		return Node{Path: p, Kind: Dir}, nil
	}

	size, err := parse.Int[uint64](fields[0])
	if err != nil {
		return Node{}, err
	}

	return Node{Path: p, Kind: File, Size: size}, nil
}

// Tree returns the tree built so far.
func (b *Builder) Tree() (*Tree, error) {
	if b.cwd == "" {
		return nil, ErrNoRoot
	}

	return b.tree, nil
}
