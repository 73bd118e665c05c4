// Package day02 scores a rock paper scissors strategy guide. The second
// column is read as the hand to play in part one, and as the outcome to reach
// in part two.
package day02

import (
	"context"
	_ "embed"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
	"github.com/askiada/go-puzzlepipe/pkg/reduce"
)

//go:embed sample.txt
var sample string

var (
	opponentHands = map[string]Hand{"A": Rock, "B": Paper, "C": Scissors}
	playerHands   = map[string]Hand{"X": Rock, "Y": Paper, "Z": Scissors}
	outcomes      = map[string]Outcome{"X": Lose, "Y": Draw, "Z": Win}
)

// Round is one line of the guide with both readings of the second column.
type Round struct {
	Theirs  Hand
	Mine    Hand
	Outcome Outcome
}

func ParseRound(line string) (Round, error) {
	fields, err := parse.Fields(line, " ", 2)
	if err != nil {
		return Round{}, err
	}

	theirs, err := parse.Enum(fields[0], opponentHands)
	if err != nil {
		return Round{}, err
	}

	mine, err := parse.Enum(fields[1], playerHands)
	if err != nil {
		return Round{}, err
	}

	return Round{Theirs: theirs, Mine: mine, Outcome: outcomes[fields[1]]}, nil
}

// HandScore scores the round when the second column is the hand to play.
func (r Round) HandScore() int {
	return r.Mine.Score() + Play(r.Mine, r.Theirs).Score()
}

// OutcomeScore scores the round when the second column is the outcome.
func (r Round) OutcomeScore() int {
	return HandFor(r.Outcome, r.Theirs).Score() + r.Outcome.Score()
}

type Puzzle struct{}

func New() *Puzzle {
	return &Puzzle{}
}

func (*Puzzle) Day() int { return 2 }

func (*Puzzle) Title() string { return "Rock Paper Scissors" }

func (*Puzzle) Sample() puzzle.Sample {
	return puzzle.Sample{
		Input: sample,
		Expected: []puzzle.Answer{
			puzzle.NewAnswer(1, "Score playing the second column", 15),
			puzzle.NewAnswer(2, "Score reaching the second column", 12),
		},
	}
}

func (*Puzzle) Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[puzzle.Answer], error) {
	rounds, err := pipeline.AddStepOneToOne(pipe, "parse rounds", lines, func(_ context.Context, line string) (Round, error) {
		return ParseRound(line)
	})
	if err != nil {
		return nil, err
	}

	return puzzle.AddReducer(pipe, "score rounds", rounds, func(rounds []Round) ([]puzzle.Answer, error) {
		return []puzzle.Answer{
			puzzle.NewAnswer(1, "Score playing the second column", reduce.SumBy(rounds, Round.HandScore)),
			puzzle.NewAnswer(2, "Score reaching the second column", reduce.SumBy(rounds, Round.OutcomeScore)),
		}, nil
	})
}
