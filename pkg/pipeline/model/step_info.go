package model

// StepType tells which kind of stage produced a StepInfo.
type StepType string

const (
	RootStepType     StepType = "root"
	NormalStepType   StepType = "step"
	SplitterStepType StepType = "splitter"
	SinkStepType     StepType = "sink"
	MergerStepType   StepType = "merger"
)

// StepInfo describes a stage to pipeline options.
type StepInfo struct {
	Type       StepType
	Name       string
	Concurrent int
	BufferSize int
}

var (
	StartStep = &Step[any]{Details: &StepInfo{Name: "start"}}
	EndStep   = &Step[any]{Details: &StepInfo{Name: "end"}}
)

// Step is the output side of a stage. Downstream stages read from Output.
type Step[O any] struct {
	Output   chan O
	KeepOpen bool
	Details  *StepInfo
}

// Info returns the stage description, or a placeholder when the step was built
// by hand without one.
func (s *Step[O]) Info() *StepInfo {
	if s.Details == nil {
		s.Details = &StepInfo{Type: RootStepType, Name: "input"}
	}

	return s.Details
}
