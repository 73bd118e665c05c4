// Package pipeline runs a puzzle as a chain of stages connected by channels.
//
// A run starts with a root step that emits raw input lines. Steps then turn
// those lines into groups, typed records and finally answers. A splitter hands
// the same records to several reducers, a merger joins their answers back into
// one stream, and a sink collects them.
//
// Every stage runs in its own goroutine once Run is called. A stage consumes
// its input with a single goroutine unless StepConcurrency says otherwise, so
// by default values keep their input order from the root step to the sink.
//
// The pipeline stops on the first error returned by any stage. Run reports
// that error, wrapped with the name of the stage that produced it, and the
// remaining stages are cancelled through the pipeline context.
//
// Options implementing model.PipelineOption observe the run: they are told
// about every stage when it is added and about every value it emits.
package pipeline
