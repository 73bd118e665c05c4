// Package day03 finds misplaced items in rucksacks. Items are letters, each
// rucksack is a line split in two equal compartments.
package day03

import (
	"context"
	_ "embed"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/pkg/grouper"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
	"github.com/askiada/go-puzzlepipe/pkg/reduce"
)

//go:embed sample.txt
var sample string

// GroupSize is the number of elves sharing a badge.
const GroupSize = 3

// Priority returns 1 to 26 for a to z and 27 to 52 for A to Z.
func Priority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, parse.Errorf(string(item), "an item between a and z or A and Z")
	}
}

// itemSet has bit p set when the item of priority p is present.
type itemSet uint64

func items(s string) (itemSet, error) {
	var set itemSet

	for _, r := range s {
		p, err := Priority(r)
		if err != nil {
			return 0, err
		}

		set |= 1 << p
	}

	return set, nil
}

func (s itemSet) prioritySum() int {
	sum := 0

	for s != 0 {
		p := bits.TrailingZeros64(uint64(s))
		sum += p
		s &^= 1 << p
	}

	return sum
}

// Misplaced returns the priority sum of the item types found in both
// compartments of a rucksack.
func Misplaced(rucksack string) (int, error) {
	if len(rucksack)%2 != 0 {
		return 0, parse.Errorf(rucksack, "an even number of items")
	}

	left, err := items(rucksack[:len(rucksack)/2])
	if err != nil {
		return 0, err
	}

	right, err := items(rucksack[len(rucksack)/2:])
	if err != nil {
		return 0, err
	}

	return (left & right).prioritySum(), nil
}

// Badge returns the priority of the only item type carried by every rucksack
// of the group.
func Badge(group grouper.Group) (int, error) {
	common := ^itemSet(0)

	for _, rucksack := range group {
		set, err := items(rucksack)
		if err != nil {
			return 0, err
		}

		common &= set
	}

	if len(group) == 0 || bits.OnesCount64(uint64(common)) != 1 {
		return 0, errors.Wrapf(puzzle.ErrStructure, "group %v must share exactly one item", group)
	}

	return common.prioritySum(), nil
}

func sumAnswer(part int, label string) func(priorities []int) ([]puzzle.Answer, error) {
	return func(priorities []int) ([]puzzle.Answer, error) {
		return []puzzle.Answer{puzzle.NewAnswer(part, label, reduce.Sum(priorities))}, nil
	}
}

type Puzzle struct{}

func New() *Puzzle {
	return &Puzzle{}
}

func (*Puzzle) Day() int { return 3 }

func (*Puzzle) Title() string { return "Rucksack Reorganization" }

func (*Puzzle) Sample() puzzle.Sample {
	return puzzle.Sample{
		Input: sample,
		Expected: []puzzle.Answer{
			puzzle.NewAnswer(1, "Priority sum of misplaced items", 157),
			puzzle.NewAnswer(2, "Priority sum of badges", 70),
		},
	}
}

func (*Puzzle) Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[puzzle.Answer], error) {
	splitter, err := pipeline.AddSplitter(pipe, "split rucksacks", lines, 2)
	if err != nil {
		return nil, err
	}

	rucksacks, err := splitter.MustGetAll()
	if err != nil {
		return nil, err
	}

	misplaced, err := pipeline.AddStepOneToOne(pipe, "find misplaced", rucksacks[0], func(_ context.Context, rucksack string) (int, error) {
		return Misplaced(rucksack)
	})
	if err != nil {
		return nil, err
	}

	groups, err := pipeline.AddStepFromChan(pipe, "group elves", rucksacks[1], grouper.Stream(grouper.FixedSize(GroupSize)))
	if err != nil {
		return nil, err
	}

	badges, err := pipeline.AddStepOneToOne(pipe, "find badges", groups, func(_ context.Context, group grouper.Group) (int, error) {
		return Badge(group)
	})
	if err != nil {
		return nil, err
	}

	part1, err := puzzle.AddReducer(pipe, "sum misplaced", misplaced, sumAnswer(1, "Priority sum of misplaced items"))
	if err != nil {
		return nil, err
	}

	part2, err := puzzle.AddReducer(pipe, "sum badges", badges, sumAnswer(2, "Priority sum of badges"))
	if err != nil {
		return nil, err
	}

	return pipeline.AddMerger(pipe, "merge answers", part1, part2)
}
