// Package logger provides a pipeline option that traces the life of every
// stage through zerolog.
package logger

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

type pipelineLogger struct {
	model.NopOption
	log   zerolog.Logger
	start time.Time
}

func (pl *pipelineLogger) New() error {
	pl.start = time.Now()
	pl.log.Debug().Msg("pipeline created")

	return nil
}

func (pl *pipelineLogger) added(parents []*model.StepInfo, step *model.StepInfo) {
	names := make([]string, len(parents))
	for i, parent := range parents {
		names[i] = parent.Name
	}

	pl.log.Debug().
		Str("stage", step.Name).
		Str("type", string(step.Type)).
		Strs("inputs", names).
		Int("concurrent", step.Concurrent).
		Msg("stage added")
}

func (pl *pipelineLogger) PrepareStep(parentStep, step *model.StepInfo) error {
	pl.added([]*model.StepInfo{parentStep}, step)

	return nil
}

func (pl *pipelineLogger) PrepareSplitter(parentStep, splitterStep *model.StepInfo) error {
	pl.added([]*model.StepInfo{parentStep}, splitterStep)

	return nil
}

func (pl *pipelineLogger) PrepareMerger(parentSteps []*model.StepInfo, step *model.StepInfo) error {
	pl.added(parentSteps, step)

	return nil
}

func (pl *pipelineLogger) PrepareSink(parentStep, step *model.StepInfo) error {
	pl.added([]*model.StepInfo{parentStep}, step)

	return nil
}

func (pl *pipelineLogger) OnStepOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	pl.log.Trace().
		Str("stage", step.Name).
		Str("input", parentStep.Name).
		Dur("wait", iterationDuration).
		Dur("compute", computationDuration).
		Msg("value emitted")

	return nil
}

func (pl *pipelineLogger) OnSinkOutput(parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration) error {
	pl.log.Trace().
		Str("stage", step.Name).
		Str("input", parentStep.Name).
		Dur("wait", iterationDuration).
		Dur("compute", computationDuration).
		Msg("value consumed")

	return nil
}

func (pl *pipelineLogger) AfterSink(step *model.StepInfo, totalDuration time.Duration) error {
	pl.log.Debug().Str("stage", step.Name).Dur("elapsed", totalDuration).Msg("sink drained")

	return nil
}

func (pl *pipelineLogger) Finish() error {
	pl.log.Debug().Dur("elapsed", time.Since(pl.start)).Msg("pipeline finished")

	return nil
}

// PipelineLogger logs stage registration at debug level and every value that
// flows through a step or sink at trace level.
func PipelineLogger(log zerolog.Logger) model.PipelineOption {
	return &pipelineLogger{log: log}
}
