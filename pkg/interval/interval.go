// Package interval implements inclusive integer intervals.
package interval

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/askiada/go-puzzlepipe/pkg/parse"
)

// Interval holds every integer from Start to End, both included.
type Interval[T constraints.Integer] struct {
	Start T
	End   T
}

// Parse reads "start-end". Bounds are non-negative, start must not exceed end.
func Parse[T constraints.Integer](s string) (Interval[T], error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return Interval[T]{}, parse.Errorf(s, "an interval start-end")
	}

	var (
		res Interval[T]
		err error
	)

	res.Start, err = parse.Int[T](start)
	if err != nil {
		return Interval[T]{}, err
	}

	res.End, err = parse.Int[T](end)
	if err != nil {
		return Interval[T]{}, err
	}

	if res.Start > res.End {
		return Interval[T]{}, parse.Errorf(s, "an interval with start <= end")
	}

	return res, nil
}

// Contains tells whether v is inside i.
func (i Interval[T]) Contains(v T) bool {
	return i.Start <= v && v <= i.End
}

func (i Interval[T]) covers(o Interval[T]) bool {
	return i.Contains(o.Start) && i.Contains(o.End)
}

// FullyContains tells whether one of the intervals lies entirely within the
// other.
func FullyContains[T constraints.Integer](a, b Interval[T]) bool {
	return a.covers(b) || b.covers(a)
}

// PartlyContains tells whether an endpoint of one interval lies within the
// other, that is whether they overlap.
func PartlyContains[T constraints.Integer](a, b Interval[T]) bool {
	return a.Contains(b.Start) || a.Contains(b.End) || b.Contains(a.Start) || b.Contains(a.End)
}
