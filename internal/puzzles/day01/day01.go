// Package day01 finds the elves carrying the most calories. Each elf lists
// one item per line and elves are separated by a blank line.
package day01

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/pkg/grouper"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
	"github.com/askiada/go-puzzlepipe/pkg/reduce"
)

//go:embed sample.txt
var sample string

type Puzzle struct {
	topK int
}

// New returns the puzzle. Part two adds up the calories of the topK elves.
func New(topK int) *Puzzle {
	return &Puzzle{topK: topK}
}

func (*Puzzle) Day() int { return 1 }

func (*Puzzle) Title() string { return "Calorie Counting" }

func (*Puzzle) Sample() puzzle.Sample {
	return puzzle.Sample{
		Input: sample,
		Expected: []puzzle.Answer{
			puzzle.NewAnswer(1, bestLabel, 24000),
			puzzle.NewAnswer(2, topLabel(3), 45000),
		},
	}
}

const bestLabel = "Calories carried by the top elf"

func topLabel(k int) string {
	return fmt.Sprintf("Calories carried by the top %d elves", k)
}

// Total adds up the calories of one elf.
func Total(group grouper.Group) (int, error) {
	calories, err := parse.Lines(group, parse.Int[int])
	if err != nil {
		return 0, err
	}

	return reduce.CheckedSum(calories)
}

func topAnswer(part, k int, label string) func(totals []int) ([]puzzle.Answer, error) {
	return func(totals []int) ([]puzzle.Answer, error) {
		sum, err := reduce.TopKSum(totals, k)
		if err != nil {
			return nil, err
		}

		return []puzzle.Answer{puzzle.NewAnswer(part, label, sum)}, nil
	}
}

func (p *Puzzle) Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[puzzle.Answer], error) {
	elves, err := pipeline.AddStepFromChan(pipe, "group elves", lines, grouper.Stream(grouper.BlankLine()))
	if err != nil {
		return nil, err
	}

	totals, err := pipeline.AddStepOneToOne(pipe, "sum calories", elves, func(_ context.Context, elf grouper.Group) (int, error) {
		return Total(elf)
	})
	if err != nil {
		return nil, err
	}

	splitter, err := pipeline.AddSplitter(pipe, "split totals", totals, 2)
	if err != nil {
		return nil, err
	}

	branches, err := splitter.MustGetAll()
	if err != nil {
		return nil, err
	}

	best, err := puzzle.AddReducer(pipe, "top elf", branches[0], topAnswer(1, 1, bestLabel))
	if err != nil {
		return nil, err
	}

	top, err := puzzle.AddReducer(pipe, "top elves", branches[1], topAnswer(2, p.topK, topLabel(p.topK)))
	if err != nil {
		return nil, err
	}

	return pipeline.AddMerger(pipe, "merge answers", best, top)
}
