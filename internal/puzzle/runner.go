package puzzle

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/go-puzzlepipe/pkg/linesource"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/drawer"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/logger"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/measure"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

// Runner runs puzzles through a pipeline.
type Runner struct {
	log      zerolog.Logger
	measure  bool
	graphDir string
}

type RunnerOption func(r *Runner)

// WithLogger logs the pipeline wiring and stage timings with log.
func WithLogger(log zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

// WithMeasure records per-stage timings and logs them at info level.
func WithMeasure() RunnerOption {
	return func(r *Runner) {
		r.measure = true
	}
}

// WithGraphDir writes a DOT drawing of every pipeline run into dir.
func WithGraphDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.graphDir = dir
	}
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Runner) pipelineOptions(p Puzzle, run string) ([]model.PipelineOption, measure.Measure) {
	log := r.log.With().Int("day", p.Day()).Str("run", run).Logger()
	opts := []model.PipelineOption{logger.PipelineLogger(log)}

	var msr measure.Measure
	if r.measure || r.graphDir != "" {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, measure.PipelineMeasure(msr))
	}

	if r.graphDir != "" {
		fileName := filepath.Join(r.graphDir, fmt.Sprintf("day%02d-%s.gv", p.Day(), run))
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(fileName), msr))
	}

	return opts, msr
}

// Run feeds the lines of src to p and returns its answers ordered by part.
func (r *Runner) Run(ctx context.Context, p Puzzle, src linesource.Source) ([]Answer, error) {
	return r.run(ctx, p, src, "input")
}

func (r *Runner) run(ctx context.Context, p Puzzle, src linesource.Source, run string) ([]Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts, msr := r.pipelineOptions(p, run)

	pipe, err := pipeline.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pipeline")
	}

	lines, err := src.AddStep(pipe, "lines")
	if err != nil {
		return nil, errors.Wrap(err, "unable to add lines step")
	}

	out, err := p.Build(pipe, lines)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to build day %d", p.Day())
	}

	answers := []Answer{}

	err = pipeline.AddSink(pipe, "answers", out, func(_ context.Context, answer Answer) error {
		answers = append(answers, answer)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to add answers sink")
	}

	err = pipe.Run()
	if err != nil {
		return nil, errors.Wrapf(err, "day %d on %s", p.Day(), src)
	}

	if r.measure {
		r.report(p, msr)
	}

	SortAnswers(answers)

	return answers, nil
}

func (r *Runner) report(p Puzzle, msr measure.Measure) {
	for _, row := range measure.Report(msr) {
		event := r.log.Info().
			Int("day", p.Day()).
			Str("stage", row.Step).
			Int64("values", row.Values).
			Dur("average", row.Average)
		if row.Total > 0 {
			event = event.Dur("total", row.Total)
		}

		for input, elapsed := range row.Transport {
			event = event.Dur("from "+input, elapsed)
		}

		event.Msg("stage timings")
	}
}

// Check runs p on its sample and fails with ErrSampleMismatch when the answers
// differ from the expected ones.
func (r *Runner) Check(ctx context.Context, p Puzzle) ([]Answer, error) {
	sample := p.Sample()

	answers, err := r.run(ctx, p, linesource.Lines(sample.Lines()), "sample")
	if err != nil {
		return nil, err
	}

	expected := slices.Clone(sample.Expected)
	SortAnswers(expected)

	if !slices.Equal(expected, answers) {
		return answers, errors.Wrapf(ErrSampleMismatch, "day %d: want %v, got %v", p.Day(), expected, answers)
	}

	return answers, nil
}
