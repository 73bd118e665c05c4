package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

// Splitter copies every value of its input to Total branches. Each branch is
// handed out once by Get.
type Splitter[I any] struct {
	mu            sync.Mutex
	currIdx       int
	mainStep      *model.Step[I]
	splittedSteps []*model.Step[I]
	bufferSize    int
	Total         int
}

// Get returns the next branch that has not been handed out yet.
func (s *Splitter[I]) Get() (*model.Step[I], bool) {
	s.mu.Lock()
	defer func() {
		s.currIdx++
		s.mu.Unlock()
	}()

	if s.currIdx >= len(s.splittedSteps) {
		return nil, false
	}

	return s.splittedSteps[s.currIdx], true
}

// MustGetAll returns every remaining branch. It fails when none is left.
func (s *Splitter[I]) MustGetAll() ([]*model.Step[I], error) {
	var steps []*model.Step[I]

	for {
		step, ok := s.Get()
		if !ok {
			break
		}

		steps = append(steps, step)
	}

	if len(steps) == 0 {
		return nil, errors.New("all splitter branches already taken")
	}

	return steps, nil
}

func (p *Pipeline) splitterHook(parent, splitter *model.StepInfo) outputHook {
	return func(iterationDuration, computationDuration time.Duration) error {
		for _, opt := range p.opts {
			err := opt.OnSplitterOutput(parent, splitter, iterationDuration, computationDuration)
			if err != nil {
				return errors.Wrap(err, "unable to run on splitter output function")
			}
		}

		return nil
	}
}

// forward moves values from buf to out until buf is closed or ctx is done.
func forward[I any](ctx context.Context, buf <-chan I, out chan<- I) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case elem, ok := <-buf:
			if !ok {
				return nil
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- elem:
			}
		}
	}
}

// AddSplitter adds a stage that duplicates its input into total branches. A
// per-branch buffer of bufferSize values lets a fast branch run ahead of a
// slow one.
func AddSplitter[I any](p *Pipeline, name string, input *model.Step[I], total int, opts ...SplitterOption[I]) (*Splitter[I], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if input == nil {
		return nil, ErrInputMustBeSet
	}

	if total <= 0 {
		return nil, ErrSplitterTotal
	}

	splitter := &Splitter[I]{
		Total: total,
		mainStep: &model.Step[I]{
			Details: &model.StepInfo{
				Type:       model.SplitterStepType,
				Name:       name,
				Concurrent: 1,
			},
		},
	}
	for _, opt := range opts {
		opt(splitter)
	}

	if splitter.bufferSize <= 0 {
		splitter.bufferSize = 1
	}

	splitter.mainStep.Details.BufferSize = splitter.bufferSize

	for _, opt := range p.opts {
		err := opt.PrepareSplitter(input.Info(), splitter.mainStep.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before splitter function")
		}
	}

	splitterBuffer := make([]chan I, total)
	splitter.splittedSteps = make([]*model.Step[I], total)

	for i := range total {
		splitterBuffer[i] = make(chan I, splitter.bufferSize)
		splitter.splittedSteps[i] = &model.Step[I]{
			Details: splitter.mainStep.Details,
			Output:  make(chan I),
		}
	}

	errC := make(chan error, total+1)
	hook := p.splitterHook(input.Info(), splitter.mainStep.Details)

	p.start(func(ctx context.Context) {
		wgrp := &sync.WaitGroup{}
		wgrp.Add(total)

		for i, buf := range splitterBuffer {
			go func() {
				defer wgrp.Done()
				defer close(splitter.splittedSteps[i].Output)

				err := forward(ctx, buf, splitter.splittedSteps[i].Output)
				if err != nil {
					errC <- err
				}
			}()
		}

		defer func() {
			for _, buf := range splitterBuffer {
				close(buf)
			}

			wgrp.Wait()
			close(errC)
		}()

		err := consume(ctx, 0, input, &model.Step[I]{Output: nil}, hook, func(ctx context.Context, entry I) ([]I, error) {
			for _, buf := range splitterBuffer {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case buf <- entry:
				}
			}

			return nil, nil
		})
		if err != nil {
			errC <- err
		}
	})
	p.errcList.add(newErrorChan(name, errC))

	return splitter, nil
}
