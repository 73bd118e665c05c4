package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day06"
	"github.com/askiada/go-puzzlepipe/pkg/linesource"
)

func values(answers []puzzle.Answer, part int) []string {
	res := []string{}

	for _, a := range answers {
		if a.Part == part {
			res = append(res, a.Value)
		}
	}

	return res
}

func TestSample(t *testing.T) {
	t.Parallel()

	got, err := puzzle.NewRunner().Check(t.Context(), day06.New(4, 14))
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "5", "6", "10", "11"}, values(got, 1))
	assert.Equal(t, []string{"19", "23", "23", "29", "26"}, values(got, 2))
}

func TestMarkers(t *testing.T) {
	t.Parallel()

	p := day06.New(4, 14)

	tcs := map[string]struct {
		data     string
		expected []puzzle.Answer
	}{
		"both": {
			data: "bvwbjplbgvbhsrlpgdmjqwftvncz",
			expected: []puzzle.Answer{
				{Part: 1, Seq: 3, Label: "Start position of packet", Value: "5"},
				{Part: 2, Seq: 3, Label: "Start position of message", Value: "23"},
			},
		},
		"packet only": {
			data:     "abcd",
			expected: []puzzle.Answer{{Part: 1, Seq: 3, Label: "Start position of packet", Value: "4"}},
		},
		"none": {
			data:     "aaaaaaa",
			expected: []puzzle.Answer{},
		},
		"empty": {
			data:     "",
			expected: []puzzle.Answer{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, p.Markers(day06.Buffer{Seq: 3, Data: tc.data}))
		})
	}
}

func TestLinesWithoutMarker(t *testing.T) {
	t.Parallel()

	got, err := puzzle.NewRunner().Run(t.Context(), day06.New(4, 14), linesource.Lines{"aaaa", "abcd", "aaaa", "abcdefghijklmn"})
	require.NoError(t, err)
	assert.Equal(t, []puzzle.Answer{
		{Part: 1, Seq: 1, Label: "Start position of packet", Value: "4"},
		{Part: 1, Seq: 3, Label: "Start position of packet", Value: "4"},
		{Part: 2, Seq: 3, Label: "Start position of message", Value: "14"},
	}, got)
}
