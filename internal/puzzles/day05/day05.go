// Package day05 rearranges crate stacks. The input is a drawing of the stacks,
// a blank line, and one move instruction per line.
package day05

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/pkg/grouper"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

//go:embed sample.txt
var sample string

const (
	label9000 = "Top of stacks (CrateMover 9000)"
	label9001 = "Top of stacks (CrateMover 9001)"
)

type Puzzle struct{}

func New() *Puzzle {
	return &Puzzle{}
}

func (*Puzzle) Day() int { return 5 }

func (*Puzzle) Title() string { return "Supply Stacks" }

func (*Puzzle) Sample() puzzle.Sample {
	return puzzle.Sample{
		Input: sample,
		Expected: []puzzle.Answer{
			puzzle.NewAnswer(1, label9000, "CMZ"),
			puzzle.NewAnswer(2, label9001, "MCD"),
		},
	}
}

// Rearrange runs the procedure on both cranes. sections holds the drawing and
// the procedure.
func Rearrange(sections []grouper.Group) ([]puzzle.Answer, error) {
	if len(sections) != 2 {
		return nil, errors.Wrapf(puzzle.ErrStructure, "want a drawing and a procedure separated by one blank line, got %d sections", len(sections))
	}

	stacks, err := ParseDrawing(sections[0])
	if err != nil {
		return nil, errors.Wrap(err, "drawing")
	}

	moves, err := parse.Lines(sections[1], ParseMove)
	if err != nil {
		return nil, errors.Wrap(err, "procedure")
	}

	answers := []puzzle.Answer{}

	for part, oneByOne := range []bool{true, false} {
		crane := stacks.Clone()

		for i, move := range moves {
			err := crane.Apply(move, oneByOne)
			if err != nil {
				return nil, errors.Wrapf(err, "move %d", i+1)
			}
		}

		label := label9000
		if !oneByOne {
			label = label9001
		}

		answers = append(answers, puzzle.NewAnswer(part+1, label, crane.Top()))
	}

	return answers, nil
}

func (*Puzzle) Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[puzzle.Answer], error) {
	sections, err := pipeline.AddStepFromChan(pipe, "split sections", lines, grouper.Stream(grouper.BlankLine()))
	if err != nil {
		return nil, err
	}

	return puzzle.AddReducer(pipe, "rearrange crates", sections, Rearrange)
}
