// Package day06 finds start markers in datastream buffers, one buffer per
// line. A marker ends after the first run of distinct characters of the
// marker width.
package day06

import (
	"context"
	_ "embed"
	"strconv"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
	"github.com/askiada/go-puzzlepipe/pkg/window"
)

//go:embed sample.txt
var sample string

const (
	packetLabel  = "Start position of packet"
	messageLabel = "Start position of message"
)

// Buffer is one input line with its position in the input.
type Buffer struct {
	Seq  int
	Data string
}

type Puzzle struct {
	packet  int
	message int
}

// New returns the puzzle looking for packet markers of width packet and
// message markers of width message.
func New(packet, message int) *Puzzle {
	return &Puzzle{packet: packet, message: message}
}

func (*Puzzle) Day() int { return 6 }

func (*Puzzle) Title() string { return "Tuning Trouble" }

func (*Puzzle) Sample() puzzle.Sample {
	expected := []puzzle.Answer{}

	for seq, pos := range []int{7, 5, 6, 10, 11} {
		expected = append(expected, puzzle.Answer{Part: 1, Seq: seq, Label: packetLabel, Value: strconv.Itoa(pos)})
	}

	for seq, pos := range []int{19, 23, 23, 29, 26} {
		expected = append(expected, puzzle.Answer{Part: 2, Seq: seq, Label: messageLabel, Value: strconv.Itoa(pos)})
	}

	return puzzle.Sample{Input: sample, Expected: expected}
}

// Markers returns the answers of one buffer. A buffer without a marker of a
// given width gives no answer for that part.
func (p *Puzzle) Markers(buf Buffer) []puzzle.Answer {
	answers := []puzzle.Answer{}

	for part, width := range []int{p.packet, p.message} {
		pos, ok := window.FirstUnique(buf.Data, width)
		if !ok {
			continue
		}

		label := packetLabel
		if part == 1 {
			label = messageLabel
		}

		answer := puzzle.NewAnswer(part+1, label, pos)
		answer.Seq = buf.Seq
		answers = append(answers, answer)
	}

	return answers
}

// number tags every line with its position.
func number(ctx context.Context, input <-chan string, output chan Buffer) error {
	seq := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-input:
			if !ok {
				return nil
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case output <- Buffer{Seq: seq, Data: line}:
			}

			seq++
		}
	}
}

func (p *Puzzle) Build(pipe *pipeline.Pipeline, lines *model.Step[string]) (*model.Step[puzzle.Answer], error) {
	buffers, err := pipeline.AddStepFromChan(pipe, "number buffers", lines, number)
	if err != nil {
		return nil, err
	}

	return pipeline.AddStepOneToMany(pipe, "find markers", buffers, func(_ context.Context, buf Buffer) ([]puzzle.Answer, error) {
		return p.Markers(buf), nil
	})
}
