package day05_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-puzzlepipe/internal/puzzle"
	"github.com/askiada/go-puzzlepipe/internal/puzzles/day05"
	"github.com/askiada/go-puzzlepipe/pkg/grouper"
	"github.com/askiada/go-puzzlepipe/pkg/linesource"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
)

var drawing = []string{
	"    [D]    ",
	"[N] [C]    ",
	"[Z] [M] [P]",
	" 1   2   3 ",
}

func TestSample(t *testing.T) {
	t.Parallel()

	got, err := puzzle.NewRunner().Check(t.Context(), day05.New())
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got[0].Value)
	assert.Equal(t, "MCD", got[1].Value)
}

func TestParseDrawing(t *testing.T) {
	t.Parallel()

	stacks, err := day05.ParseDrawing(drawing)
	require.NoError(t, err)
	assert.Equal(t, "NDP", stacks.Top())

	// trailing spaces are optional
	stacks, err = day05.ParseDrawing([]string{"    [D]", "[N] [C]", "[Z] [M] [P]", " 1   2   3"})
	require.NoError(t, err)
	assert.Equal(t, "NDP", stacks.Top())

	tcs := map[string][]string{
		"no lines":        {},
		"no names":        {"[A]", "   "},
		"repeated names":  {"[A] [B]", " 1   1 "},
		"bad crate":       {"[A] (B)", " 1   2 "},
		"empty crate":     {"[ ] [B]", " 1   2 "},
		"too many crates": {"[A] [B] [C]", " 1   2 "},
		"cut crate":       {"[A] [B", " 1   2 "},
	}

	for name, lines := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := day05.ParseDrawing(lines)
			require.ErrorIs(t, err, parse.ErrParse)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	stacks, err := day05.ParseDrawing(drawing)
	require.NoError(t, err)

	oneByOne := stacks.Clone()
	require.NoError(t, oneByOne.Apply(day05.Move{Count: 2, From: "2", To: "3"}, true))
	assert.Equal(t, "NMC", oneByOne.Top())

	together := stacks.Clone()
	require.NoError(t, together.Apply(day05.Move{Count: 2, From: "2", To: "3"}, false))
	assert.Equal(t, "NMD", together.Top())

	assert.Equal(t, "NDP", stacks.Top())

	same := stacks.Clone()
	require.NoError(t, same.Apply(day05.Move{Count: 3, From: "2", To: "2"}, true))
	assert.Equal(t, "NDP", same.Top())

	err = stacks.Clone().Apply(day05.Move{Count: 4, From: "2", To: "1"}, true)
	require.ErrorIs(t, err, day05.ErrEmptyStack)

	err = stacks.Clone().Apply(day05.Move{Count: 1, From: "9", To: "1"}, true)
	require.ErrorIs(t, err, day05.ErrUnknownStack)

	err = stacks.Clone().Apply(day05.Move{Count: 1, From: "1", To: "9"}, true)
	require.ErrorIs(t, err, day05.ErrUnknownStack)

	empty := stacks.Clone()
	require.NoError(t, empty.Apply(day05.Move{Count: 1, From: "3", To: "1"}, true))
	assert.Equal(t, "PD", empty.Top())
}

func TestParseMove(t *testing.T) {
	t.Parallel()

	move, err := day05.ParseMove("move 3 from 1 to 3")
	require.NoError(t, err)
	assert.Equal(t, day05.Move{Count: 3, From: "1", To: "3"}, move)

	for _, line := range []string{"", "move 3 from 1", "move x from 1 to 3", "move -1 from 1 to 3", "shift 3 from 1 to 3", "move 3 of 1 to 3", "move 3 from 1 into 3", "move 3 from  to 3"} {
		_, err := day05.ParseMove(line)
		require.ErrorIs(t, err, parse.ErrParse, line)
	}
}

func TestRearrangeStructure(t *testing.T) {
	t.Parallel()

	_, err := day05.Rearrange([]grouper.Group{drawing})
	require.ErrorIs(t, err, puzzle.ErrStructure)

	lines := append(append([]string{}, drawing...), "", "move 1 from 2 to 1", "", "move 1 from 1 to 2")

	_, err = puzzle.NewRunner().Run(t.Context(), day05.New(), linesource.Lines(lines))
	require.ErrorIs(t, err, puzzle.ErrStructure)
}
