// Package grouper partitions a stream of lines into groups.
//
// Strategies are stateless descriptions, each run gets its own accumulator,
// so a Strategy can be shared between pipelines. Split and Stream drive the
// same accumulator and always agree.
package grouper

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrSizeMismatch = errors.New("line count is not a multiple of the group size")
	ErrInvalidSize  = errors.New("group size must be greater than 0")
	ErrNilPredicate = errors.New("marker predicate must be set")
)

// Group is a contiguous run of input lines.
type Group []string

// Strategy decides where groups start and end.
type Strategy interface {
	newAccumulator() (accumulator, error)
}

type accumulator interface {
	// push takes the next line and returns the groups it completes.
	push(line string) []Group
	// flush returns the groups left once the input is exhausted.
	flush() ([]Group, error)
}

// Split groups lines eagerly.
func Split(lines []string, strategy Strategy) ([]Group, error) {
	acc, err := strategy.newAccumulator()
	if err != nil {
		return nil, err
	}

	groups := []Group{}
	for _, line := range lines {
		groups = append(groups, acc.push(line)...)
	}

	rest, err := acc.flush()
	if err != nil {
		return nil, err
	}

	return append(groups, rest...), nil
}

// Stream returns a stage function grouping lines as they arrive, meant for
// pipeline.AddStepFromChan.
func Stream(strategy Strategy) func(ctx context.Context, input <-chan string, output chan Group) error {
	return func(ctx context.Context, input <-chan string, output chan Group) error {
		acc, err := strategy.newAccumulator()
		if err != nil {
			return err
		}

		send := func(groups []Group) error {
			for _, group := range groups {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case output <- group:
				}
			}

			return nil
		}

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok := <-input:
				if !ok {
					rest, err := acc.flush()
					if err != nil {
						return err
					}

					return send(rest)
				}

				if err := send(acc.push(line)); err != nil {
					return err
				}
			}
		}
	}
}
