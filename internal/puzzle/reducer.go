package puzzle

import (
	"context"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

// Collect reads input until it is closed.
func Collect[I any](ctx context.Context, input <-chan I) ([]I, error) {
	var res []I

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case in, ok := <-input:
			if !ok {
				return res, nil
			}

			res = append(res, in)
		}
	}
}

// AddReducer adds a stage that waits for the whole input, folds it with
// reduceFn and emits the resulting answers.
func AddReducer[I any](pipe *pipeline.Pipeline, name string, input *model.Step[I], reduceFn func(xs []I) ([]Answer, error)) (*model.Step[Answer], error) {
	return pipeline.AddStepFromChan(pipe, name, input, func(ctx context.Context, in <-chan I, out chan Answer) error {
		xs, err := Collect(ctx, in)
		if err != nil {
			return err
		}

		answers, err := reduceFn(xs)
		if err != nil {
			return err
		}

		for _, answer := range answers {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- answer:
			}
		}

		return nil
	})
}
