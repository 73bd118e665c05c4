package linesource

import (
	"context"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

// Source adds the root step that emits the lines of a puzzle input.
type Source interface {
	AddStep(pipe *pipeline.Pipeline, name string) (*model.Step[string], error)
	String() string
}

// File is a Source reading the file at the given path.
type File string

func (f File) AddStep(pipe *pipeline.Pipeline, name string) (*model.Step[string], error) {
	return AddFileStep(pipe, name, string(f))
}

func (f File) String() string {
	return string(f)
}

// Lines is a Source emitting lines held in memory.
type Lines []string

func (l Lines) AddStep(pipe *pipeline.Pipeline, name string) (*model.Step[string], error) {
	return AddLinesStep(pipe, name, l)
}

func (l Lines) String() string {
	return "memory"
}

// AddFileStep adds a root step emitting the lines of the file at path. The
// file is only opened once the pipeline runs.
func AddFileStep(pipe *pipeline.Pipeline, name, path string) (*model.Step[string], error) {
	return pipeline.AddRootStep(pipe, name, func(ctx context.Context, out chan<- string) error {
		return scanFile(ctx, path, out)
	})
}

// AddLinesStep adds a root step emitting lines.
func AddLinesStep(pipe *pipeline.Pipeline, name string, lines []string) (*model.Step[string], error) {
	return pipeline.AddRootStep(pipe, name, func(ctx context.Context, out chan<- string) error {
		for _, line := range lines {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- line:
			}
		}

		return nil
	})
}
