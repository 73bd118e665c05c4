// Package puzzle defines what a daily puzzle plugs into the pipeline and runs
// it from a line source to its answers.
package puzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

var (
	// ErrStructure reports input that parses line by line but does not have
	// the overall shape a puzzle needs.
	ErrStructure      = errors.New("unexpected input structure")
	ErrUnknownDay     = errors.New("unknown day")
	ErrDuplicateDay   = errors.New("day already registered")
	ErrSampleMismatch = errors.New("sample answers mismatch")
)

// Answer is one value a puzzle prints. Answers are ordered by Part, then Seq.
type Answer struct {
	Part  int
	Seq   int
	Label string
	Value string
}

func NewAnswer(part int, label string, value any) Answer {
	return Answer{Part: part, Label: label, Value: fmt.Sprint(value)}
}

func (a Answer) String() string {
	return fmt.Sprintf("%s = %s", a.Label, a.Value)
}

// SortAnswers orders answers by part, then by sequence number.
func SortAnswers(answers []Answer) {
	sort.SliceStable(answers, func(i, j int) bool {
		if answers[i].Part != answers[j].Part {
			return answers[i].Part < answers[j].Part
		}

		return answers[i].Seq < answers[j].Seq
	})
}

// Sample is a small input shipped with a puzzle, with the answers it must
// produce.
type Sample struct {
	Input    string
	Expected []Answer
}

// Lines splits the sample input into lines. A final line terminator does not
// start an extra empty line.
func (s Sample) Lines() []string {
	input := strings.TrimSuffix(strings.ReplaceAll(s.Input, "\r\n", "\n"), "\n")
	if input == "" {
		return []string{}
	}

	return strings.Split(input, "\n")
}

// Puzzle is one day. Build wires the puzzle stages between the lines stage
// and the answers stage; stage names must be unique within the puzzle.
type Puzzle interface {
	Day() int
	Title() string
	Sample() Sample
	Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[Answer], error)
}
