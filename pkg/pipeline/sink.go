package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

func prepareSink[I any](pipe *Pipeline, name string, input *model.Step[I]) (*model.StepInfo, error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}

	if input == nil {
		return nil, ErrInputMustBeSet
	}

	details := &model.StepInfo{
		Type:       model.SinkStepType,
		Name:       name,
		Concurrent: 1,
	}

	for _, opt := range pipe.opts {
		err := opt.PrepareSink(input.Info(), details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before sink function")
		}
	}

	return details, nil
}

func (p *Pipeline) afterSink(details *model.StepInfo) error {
	for _, opt := range p.opts {
		err := opt.AfterSink(details, time.Since(p.startTime))
		if err != nil {
			return errors.Wrap(err, "unable to run after sink function")
		}
	}

	return nil
}

// AddSink adds the terminal stage that hands every value to sinkFn, one at a time.
func AddSink[I any](pipe *Pipeline, name string, input *model.Step[I], sinkFn func(ctx context.Context, input I) error) error {
	details, err := prepareSink(pipe, name, input)
	if err != nil {
		return err
	}

	errC := make(chan error, 1)

	pipe.start(func(ctx context.Context) {
		defer close(errC)

	outer:
		for {
			startInputChan := time.Now()
			select {
			case <-ctx.Done():
				errC <- ctx.Err()

				return
			case in, ok := <-input.Output:
				if !ok {
					break outer
				}

				endInputChan := time.Since(startInputChan)
				startFn := time.Now()

				err := sinkFn(ctx, in)
				if err != nil {
					errC <- err

					return
				}

				endFn := time.Since(startFn)

				for _, opt := range pipe.opts {
					err := opt.OnSinkOutput(input.Info(), details, endInputChan, endFn)
					if err != nil {
						errC <- errors.Wrap(err, "unable to run on sink output function")

						return
					}
				}
			}
		}

		err := pipe.afterSink(details)
		if err != nil {
			errC <- err
		}
	})
	pipe.errcList.add(newErrorChan(name, errC))

	return nil
}

// AddSinkFromChan adds a terminal stage that reads the whole input channel itself.
func AddSinkFromChan[I any](pipe *Pipeline, name string, input *model.Step[I], stepFn func(ctx context.Context, input <-chan I) error) error {
	details, err := prepareSink(pipe, name, input)
	if err != nil {
		return err
	}

	errC := make(chan error, 1)

	pipe.start(func(ctx context.Context) {
		defer close(errC)

		err := stepFn(ctx, input.Output)
		if err != nil {
			errC <- err

			return
		}

		err = pipe.afterSink(details)
		if err != nil {
			errC <- err
		}
	})
	pipe.errcList.add(newErrorChan(name, errC))

	return nil
}
