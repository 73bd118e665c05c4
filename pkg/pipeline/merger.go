package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

func prepareMerger[I any](pipe *Pipeline, name string, steps ...*model.Step[I]) (*model.Step[I], error) {
	outputStep := newStep[I](model.MergerStepType, name)

	stepInfos := make([]*model.StepInfo, len(steps))
	for i, step := range steps {
		stepInfos[i] = step.Info()
	}

	for _, opt := range pipe.opts {
		err := opt.PrepareMerger(stepInfos, outputStep.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before merger function")
		}
	}

	return outputStep, nil
}

func runStepMerger[I any](ctx context.Context, pipe *Pipeline, step, outputStep *model.Step[I]) error {
	for {
		startIter := time.Now()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case entry, ok := <-step.Output:
			if !ok {
				return nil
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case outputStep.Output <- entry:
				endIter := time.Since(startIter)

				for _, opt := range pipe.opts {
					err := opt.OnMergerOutput(step.Info(), outputStep.Details, endIter)
					if err != nil {
						return errors.Wrap(err, "unable to run on merger output function")
					}
				}
			}
		}
	}
}

// AddMerger adds a merger step to the pipeline. It will merge the output of the steps into a single channel.
// Values from different steps interleave in arrival order.
func AddMerger[I any](pipe *Pipeline, name string, steps ...*model.Step[I]) (*model.Step[I], error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}

	if len(steps) == 0 {
		return nil, ErrInputMustBeSet
	}

	for _, step := range steps {
		if step == nil {
			return nil, ErrInputMustBeSet
		}
	}

	outputStep, err := prepareMerger(pipe, name, steps...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to prepare merger")
	}

	errC := make(chan error, len(steps))
	wgrp := &sync.WaitGroup{}
	wgrp.Add(len(steps))

	pipe.start(func(_ context.Context) {
		wgrp.Wait()
		close(errC)
		close(outputStep.Output)
	})

	for _, step := range steps {
		pipe.start(func(ctx context.Context) {
			defer wgrp.Done()

			err := runStepMerger(ctx, pipe, step, outputStep)
			if err != nil {
				errC <- err
			}
		})
	}

	pipe.errcList.add(newErrorChan(name, errC))

	return outputStep, nil
}
