package pipeline

import (
	"context"
	"reflect"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

// outputHook is called after each value is pushed downstream.
type outputHook func(iterationDuration, computationDuration time.Duration) error

func noHook(_, _ time.Duration) error { return nil }

// consume reads input until it is closed, turns each value into zero or more
// outputs with fn and pushes them to output.
func consume[I any, O any](ctx context.Context, goIdx int, input *model.Step[I], output *model.Step[O], hook outputHook, fn func(context.Context, I) ([]O, error)) error {
outer:
	for {
		start := time.Now()
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "go routine %d:", goIdx)
		case in, ok := <-input.Output:
			if !ok {
				break outer
			}

			startFn := time.Now()

			outs, err := fn(ctx, in)
			if err != nil {
				return errors.Wrapf(err, "go routine %d:", goIdx)
			}

			endFn := time.Since(startFn)

			for _, out := range outs {
				// check the context again so that running goroutines stop
				// adding elements once the pipeline is cancelled
				select {
				case <-ctx.Done():
					return errors.Wrapf(ctx.Err(), "go routine %d:", goIdx)
				case output.Output <- out:
				}
			}

			err = hook(time.Since(start)-endFn, endFn)
			if err != nil {
				return errors.Wrapf(err, "go routine %d:", goIdx)
			}
		}
	}

	return nil
}

// fanOut runs worker concurrent times and stops all of them on the first error.
func fanOut(ctx context.Context, concurrent int, worker func(ctx context.Context, goIdx int) error) error {
	if concurrent <= 1 {
		return worker(ctx, 0)
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrent)

	for goIdx := range concurrent {
		errGrp.Go(func() error {
			return worker(dCtx, goIdx)
		})
	}

	return errGrp.Wait()
}

func isZero[O any](v O) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}

func runOneToOne[I any, O any](ctx context.Context, input *model.Step[I], output *model.Step[O], oneToOneFn func(context.Context, I) (O, error), orZero bool, hooks ...outputHook) error {
	hook := pickHook(hooks)

	return fanOut(ctx, output.Info().Concurrent, func(ctx context.Context, goIdx int) error {
		return consume(ctx, goIdx, input, output, hook, func(ctx context.Context, in I) ([]O, error) {
			out, err := oneToOneFn(ctx, in)
			if err != nil {
				return nil, err
			}

			if orZero && isZero(out) {
				return nil, nil
			}

			return []O{out}, nil
		})
	})
}

func runOneToMany[I any, O any](ctx context.Context, input *model.Step[I], output *model.Step[O], oneToManyFn func(context.Context, I) ([]O, error), hooks ...outputHook) error {
	hook := pickHook(hooks)

	return fanOut(ctx, output.Info().Concurrent, func(ctx context.Context, goIdx int) error {
		return consume(ctx, goIdx, input, output, hook, oneToManyFn)
	})
}

func pickHook(hooks []outputHook) outputHook {
	if len(hooks) == 0 || hooks[0] == nil {
		return noHook
	}

	return hooks[0]
}

func prepareStep[I, O any](p *Pipeline, name string, input *model.Step[I], opts ...StepOption[O]) (*model.Step[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if input == nil {
		return nil, ErrInputMustBeSet
	}

	step := newStep(model.NormalStepType, name, opts...)

	for _, opt := range p.opts {
		err := opt.PrepareStep(input.Info(), step.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before step function")
		}
	}

	return step, nil
}

func (p *Pipeline) stepHook(parent, step *model.StepInfo) outputHook {
	return func(iterationDuration, computationDuration time.Duration) error {
		for _, opt := range p.opts {
			err := opt.OnStepOutput(parent, step, iterationDuration, computationDuration)
			if err != nil {
				return errors.Wrap(err, "unable to run on step output function")
			}
		}

		return nil
	}
}

func addStep[I any, O any](p *Pipeline, name string, input *model.Step[I], step *model.Step[O], stepToStepFn func(ctx context.Context, input *model.Step[I], output *model.Step[O]) error) *model.Step[O] {
	errC := make(chan error, 1)

	p.start(func(ctx context.Context) {
		defer func() {
			if !step.KeepOpen {
				close(step.Output)
			}

			close(errC)
		}()

		err := stepToStepFn(ctx, input, step)
		if err != nil {
			errC <- err
		}
	})
	p.errcList.add(newErrorChan(name, errC))

	return step
}

// AddStepOneToOne adds a stage that maps every input value to exactly one output value.
func AddStepOneToOne[I any, O any](p *Pipeline, name string, input *model.Step[I], oneToOneFn func(context.Context, I) (O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	step, err := prepareStep(p, name, input, opts...)
	if err != nil {
		return nil, err
	}

	hook := p.stepHook(input.Info(), step.Details)

	return addStep(p, name, input, step, func(ctx context.Context, in *model.Step[I], out *model.Step[O]) error {
		return runOneToOne(ctx, in, out, oneToOneFn, false, hook)
	}), nil
}

// AddStepOneToOneOrZero is AddStepOneToOne, except zero-valued outputs are dropped.
func AddStepOneToOneOrZero[I any, O any](p *Pipeline, name string, input *model.Step[I], oneToOneFn func(context.Context, I) (O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	step, err := prepareStep(p, name, input, opts...)
	if err != nil {
		return nil, err
	}

	hook := p.stepHook(input.Info(), step.Details)

	return addStep(p, name, input, step, func(ctx context.Context, in *model.Step[I], out *model.Step[O]) error {
		return runOneToOne(ctx, in, out, oneToOneFn, true, hook)
	}), nil
}

// AddStepOneToMany adds a stage that maps every input value to any number of output values.
func AddStepOneToMany[I any, O any](p *Pipeline, name string, input *model.Step[I], oneToManyFn func(context.Context, I) ([]O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	step, err := prepareStep(p, name, input, opts...)
	if err != nil {
		return nil, err
	}

	hook := p.stepHook(input.Info(), step.Details)

	return addStep(p, name, input, step, func(ctx context.Context, in *model.Step[I], out *model.Step[O]) error {
		return runOneToMany(ctx, in, out, oneToManyFn, hook)
	}), nil
}

// AddStepFromChan adds a stage that owns both channels. It is meant for
// stateful stages (grouping, folding) that cannot work one value at a time.
// With a concurrency above 1, stepFn runs that many times on the same channels.
func AddStepFromChan[I any, O any](p *Pipeline, name string, input *model.Step[I], stepFn func(ctx context.Context, input <-chan I, output chan O) error, opts ...StepOption[O]) (*model.Step[O], error) {
	if stepFn == nil {
		return nil, ErrStepFnMustBeSet
	}

	step, err := prepareStep(p, name, input, opts...)
	if err != nil {
		return nil, err
	}

	return addStep(p, name, input, step, func(ctx context.Context, in *model.Step[I], out *model.Step[O]) error {
		return fanOut(ctx, out.Details.Concurrent, func(ctx context.Context, _ int) error {
			return stepFn(ctx, in.Output, out.Output)
		})
	}), nil
}
