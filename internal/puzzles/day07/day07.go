// Package day07 rebuilds a filesystem from a terminal trace and picks
// directories by size.
package day07

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/pkg/fstree"
	"github.com/askiada/go-puzzlepipe/pkg/grouper"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
	"github.com/askiada/go-puzzlepipe/pkg/reduce"
)

//go:embed sample.txt
var sample string

// Limits are the sizes the answers depend on.
type Limits struct {
	DiskSize      uint64
	RequiredSpace uint64
	SmallDirLimit uint64
}

var DefaultLimits = Limits{
	DiskSize:      70000000,
	RequiredSpace: 30000000,
	SmallDirLimit: 100000,
}

type Puzzle struct {
	limits Limits
}

func New(limits Limits) *Puzzle {
	return &Puzzle{limits: limits}
}

func (*Puzzle) Day() int { return 7 }

func (*Puzzle) Title() string { return "No Space Left On Device" }

func (p *Puzzle) smallLabel() string {
	return fmt.Sprintf("Total size of directories of at most %d", p.limits.SmallDirLimit)
}

const deleteLabel = "Size of the smallest directory to delete"

func (*Puzzle) Sample() puzzle.Sample {
	p := New(DefaultLimits)

	return puzzle.Sample{
		Input: sample,
		Expected: []puzzle.Answer{
			puzzle.NewAnswer(1, p.smallLabel(), 95437),
			puzzle.NewAnswer(2, deleteLabel, 24933642),
		},
	}
}

// Replay builds the tree described by commands.
func Replay(commands []fstree.Command) (*fstree.Tree, error) {
	builder := fstree.NewBuilder()

	for i, cmd := range commands {
		err := builder.Apply(cmd)
		if err != nil {
			return nil, errors.Wrapf(err, "command %d", i+1)
		}
	}

	return builder.Tree()
}

// Answers picks directories in tree. Part two needs the smallest directory
// whose deletion leaves RequiredSpace free; when enough space is already
// free, it is the smallest directory.
func (p *Puzzle) Answers(tree *fstree.Tree) ([]puzzle.Answer, error) {
	sizes, err := tree.DirSizes()
	if err != nil {
		return nil, err
	}

	dirs := make([]uint64, 0, len(sizes))
	for _, size := range sizes {
		dirs = append(dirs, size)
	}

	small, err := reduce.CheckedSumBy(dirs, func(size uint64) uint64 {
		if size <= p.limits.SmallDirLimit {
			return size
		}

		return 0
	})
	if err != nil {
		return nil, errors.Wrapf(err, "directories of at most %d bytes", p.limits.SmallDirLimit)
	}

	used := sizes[fstree.Root]
	if used > p.limits.DiskSize {
		return nil, errors.Wrapf(puzzle.ErrStructure, "%d bytes used on a disk of %d", used, p.limits.DiskSize)
	}

	var needed uint64
	if free := p.limits.DiskSize - used; free < p.limits.RequiredSpace {
		needed = p.limits.RequiredSpace - free
	}

	smallest, err := reduce.Min(dirs, func(size uint64) bool { return size >= needed })
	if err != nil {
		return nil, errors.Wrapf(err, "no directory frees %d bytes", needed)
	}

	return []puzzle.Answer{
		puzzle.NewAnswer(1, p.smallLabel(), small),
		puzzle.NewAnswer(2, deleteLabel, smallest),
	}, nil
}

func (p *Puzzle) Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[puzzle.Answer], error) {
	groups, err := pipeline.AddStepFromChan(pipe, "group commands", lines, grouper.Stream(grouper.Marker(fstree.IsCommand)))
	if err != nil {
		return nil, err
	}

	commands, err := pipeline.AddStepOneToOne(pipe, "parse commands", groups, func(_ context.Context, group grouper.Group) (fstree.Command, error) {
		return fstree.ParseCommand(group)
	})
	if err != nil {
		return nil, err
	}

	return puzzle.AddReducer(pipe, "size directories", commands, func(commands []fstree.Command) ([]puzzle.Answer, error) {
		tree, err := Replay(commands)
		if err != nil {
			return nil, err
		}

		return p.Answers(tree)
	})
}
