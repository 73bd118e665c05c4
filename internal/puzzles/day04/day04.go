// Package day04 compares the section ranges assigned to pairs of elves.
package day04

import (
	"context"
	_ "embed"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/pkg/interval"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
	"github.com/askiada/go-puzzlepipe/pkg/reduce"
)

//go:embed sample.txt
var sample string

type Pair struct {
	A, B interval.Interval[uint32]
}

// ParsePair reads "a-b,c-d".
func ParsePair(line string) (Pair, error) {
	fields, err := parse.Fields(line, ",", 2)
	if err != nil {
		return Pair{}, err
	}

	a, err := interval.Parse[uint32](fields[0])
	if err != nil {
		return Pair{}, err
	}

	b, err := interval.Parse[uint32](fields[1])
	if err != nil {
		return Pair{}, err
	}

	return Pair{A: a, B: b}, nil
}

func (p Pair) FullyContained() bool {
	return interval.FullyContains(p.A, p.B)
}

func (p Pair) PartlyContained() bool {
	return interval.PartlyContains(p.A, p.B)
}

type Puzzle struct{}

func New() *Puzzle {
	return &Puzzle{}
}

func (*Puzzle) Day() int { return 4 }

func (*Puzzle) Title() string { return "Camp Cleanup" }

func (*Puzzle) Sample() puzzle.Sample {
	return puzzle.Sample{
		Input: sample,
		Expected: []puzzle.Answer{
			puzzle.NewAnswer(1, "Pairs where one range fully contains the other", 2),
			puzzle.NewAnswer(2, "Pairs with overlapping ranges", 4),
		},
	}
}

func (*Puzzle) Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[puzzle.Answer], error) {
	pairs, err := pipeline.AddStepOneToOne(pipe, "parse pairs", lines, func(_ context.Context, line string) (Pair, error) {
		return ParsePair(line)
	})
	if err != nil {
		return nil, err
	}

	return puzzle.AddReducer(pipe, "count overlaps", pairs, func(pairs []Pair) ([]puzzle.Answer, error) {
		return []puzzle.Answer{
			puzzle.NewAnswer(1, "Pairs where one range fully contains the other", reduce.Count(pairs, Pair.FullyContained)),
			puzzle.NewAnswer(2, "Pairs with overlapping ranges", reduce.Count(pairs, Pair.PartlyContained)),
		}, nil
	})
}
