package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

func newStep[O any](stepType model.StepType, name string, opts ...StepOption[O]) *model.Step[O] {
	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       stepType,
			Name:       name,
			Concurrent: 1,
		},
	}
	for _, opt := range opts {
		opt(step)
	}

	if step.Details.Concurrent < 1 {
		step.Details.Concurrent = 1
	}

	step.Output = make(chan O, step.Details.BufferSize)

	return step
}

// AddRootStep adds the stage that feeds the pipeline. stepFn pushes values to
// rootChan and returns once it has nothing more to send; rootChan is closed
// afterwards unless StepKeepOpen is set.
func AddRootStep[O any](p *Pipeline, name string, stepFn func(ctx context.Context, rootChan chan<- O) error, opts ...StepOption[O]) (*model.Step[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if stepFn == nil {
		return nil, ErrStepFnMustBeSet
	}

	step := newStep(model.RootStepType, name, opts...)

	for _, opt := range p.opts {
		err := opt.PrepareStep(model.StartStep.Details, step.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before step function")
		}
	}

	errC := make(chan error, 1)

	p.start(func(ctx context.Context) {
		defer func() {
			if !step.KeepOpen {
				close(step.Output)
			}

			close(errC)
		}()

		err := stepFn(ctx, step.Output)
		if err != nil {
			errC <- err
		}
	})
	p.errcList.add(newErrorChan(name, errC))

	return step, nil
}
