package pipeline

import "github.com/askiada/go-puzzlepipe/pkg/pipeline/model"

// StepOption configures the output step of a stage.
type StepOption[O any] func(s *model.Step[O])

// StepConcurrency sets how many goroutines consume the input of the stage.
// Any value above 1 gives up input ordering.
func StepConcurrency[O any](concurrent int) StepOption[O] {
	return func(s *model.Step[O]) {
		s.Details.Concurrent = concurrent
	}
}

// StepKeepOpen leaves closing the output channel to the stage function.
func StepKeepOpen[O any]() StepOption[O] {
	return func(s *model.Step[O]) {
		s.KeepOpen = true
	}
}

// StepBufferSize makes the output channel of the stage buffered.
func StepBufferSize[O any](size int) StepOption[O] {
	return func(s *model.Step[O]) {
		s.Details.BufferSize = size
	}
}

type SplitterOption[I any] func(s *Splitter[I])

func SplitterBufferSize[I any](bufferSize int) SplitterOption[I] {
	return func(s *Splitter[I]) {
		s.bufferSize = bufferSize
	}
}
