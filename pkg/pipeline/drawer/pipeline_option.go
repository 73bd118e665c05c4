package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/measure"
	"github.com/askiada/go-puzzlepipe/pkg/pipeline/model"
)

var shapes = map[model.StepType]string{
	model.RootStepType:     "invhouse",
	model.NormalStepType:   "box",
	model.SplitterStepType: "trapezium",
	model.MergerStepType:   "invtrapezium",
	model.SinkStepType:     "house",
}

type pipelineDrawer struct {
	model.NopOption
	Drawer
	m         measure.Measure
	startTime time.Time
}

func (pd *pipelineDrawer) New() error {
	pd.startTime = time.Now()

	err := pd.AddStep(model.StartStep.Details.Name, "shape", "circle")
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}

	err = pd.AddStep(model.EndStep.Details.Name, "shape", "doublecircle")
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) addLinked(parents []*model.StepInfo, step *model.StepInfo) error {
	err := pd.AddStep(step.Name, "shape", shapes[step.Type])
	if err != nil {
		return err
	}

	for _, parent := range parents {
		err := pd.AddLink(parent.Name, step.Name)
		if err != nil {
			return err
		}
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	return pd.addLinked([]*model.StepInfo{parentStep}, step)
}

func (pd *pipelineDrawer) PrepareSplitter(parentStep, splitterStep *model.StepInfo) error {
	return pd.addLinked([]*model.StepInfo{parentStep}, splitterStep)
}

func (pd *pipelineDrawer) PrepareMerger(parentSteps []*model.StepInfo, step *model.StepInfo) error {
	return pd.addLinked(parentSteps, step)
}

func (pd *pipelineDrawer) PrepareSink(parentStep, step *model.StepInfo) error {
	err := pd.addLinked([]*model.StepInfo{parentStep}, step)
	if err != nil {
		return err
	}

	return pd.AddLink(step.Name, model.EndStep.Details.Name)
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.SetTotalTime(model.EndStep.Details.Name, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}

		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the pipeline once it finishes. When msr is not nil,
// timings recorded by a measure option are added to the drawing.
func PipelineDrawer(drawer Drawer, msr measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: msr}
}
