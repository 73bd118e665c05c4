package measure_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-puzzlepipe/pkg/pipeline/measure"
)

func TestAddMetricKeepsFirst(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	first := m.AddMetric("splitter", 1)
	first.AddDuration(time.Second)

	second := m.AddMetric("splitter", 4)
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), m.GetMetric("splitter").Count())
	assert.Nil(t, m.GetMetric("missing"))
}

func TestAVGDuration(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	mt := m.AddMetric("step", 1)
	assert.Zero(t, mt.AVGDuration())

	mt.AddDuration(10 * time.Millisecond)
	mt.AddDuration(30 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, mt.AVGDuration())
	assert.Equal(t, int64(2), mt.Count())
}

func TestAVGTransportDurationDoesNotMutate(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	mt := m.AddMetric("step", 2)
	mt.AddTransportDuration("root", 40*time.Millisecond)
	mt.AddTransportDuration("root", 80*time.Millisecond)

	for range 3 {
		avg := mt.AVGTransportDuration()
		require.Contains(t, avg, "root")
		// 60ms on average, shared by two goroutines
		assert.Equal(t, 30*time.Millisecond, avg["root"].Elapsed)
	}

	assert.Equal(t, 120*time.Millisecond, mt.AllTransports()["root"].Elapsed)
}

func TestReport(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	idle := m.AddMetric("idle", 1)
	_ = idle

	sink := m.AddMetric("sink", 1)
	sink.AddDuration(2 * time.Millisecond)
	sink.AddTransportDuration("parse", 4*time.Millisecond)
	sink.SetTotalDuration(time.Second)

	parse := m.AddMetric("parse", 1)
	parse.AddDuration(6 * time.Millisecond)

	got := measure.Report(m)
	want := []measure.Row{
		{
			Step:      "parse",
			Values:    1,
			Average:   6 * time.Millisecond,
			Transport: map[string]time.Duration{},
		},
		{
			Step:      "sink",
			Values:    1,
			Average:   2 * time.Millisecond,
			Total:     time.Second,
			Transport: map[string]time.Duration{"parse": 4 * time.Millisecond},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report() mismatch (-want +got):\n%s", diff)
	}
}
