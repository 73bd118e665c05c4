package grouper

import (
	"github.com/pkg/errors"
)

type blankLine struct{}

// BlankLine splits on empty lines and drops them. Empty groups are kept, so an
// empty input gives one empty group and two adjacent blank lines give an empty
// group between them.
func BlankLine() Strategy {
	return blankLine{}
}

func (blankLine) newAccumulator() (accumulator, error) {
	return &blankLineAcc{current: Group{}}, nil
}

type blankLineAcc struct {
	current Group
}

func (a *blankLineAcc) push(line string) []Group {
	if line != "" {
		a.current = append(a.current, line)

		return nil
	}

	done := a.current
	a.current = Group{}

	return []Group{done}
}

func (a *blankLineAcc) flush() ([]Group, error) {
	return []Group{a.current}, nil
}

type fixedSize struct {
	size           int
	allowShortTail bool
}

type FixedSizeOption func(*fixedSize)

// AllowShortTail keeps a final group shorter than the requested size instead
// of failing with ErrSizeMismatch.
func AllowShortTail() FixedSizeOption {
	return func(f *fixedSize) {
		f.allowShortTail = true
	}
}

// FixedSize groups consecutive lines by size.
func FixedSize(size int, opts ...FixedSizeOption) Strategy {
	strategy := fixedSize{size: size}
	for _, opt := range opts {
		opt(&strategy)
	}

	return strategy
}

func (f fixedSize) newAccumulator() (accumulator, error) {
	if f.size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %d", f.size)
	}

	return &fixedSizeAcc{fixedSize: f, current: make(Group, 0, f.size)}, nil
}

type fixedSizeAcc struct {
	fixedSize
	current Group
	seen    int
}

func (a *fixedSizeAcc) push(line string) []Group {
	a.seen++
	a.current = append(a.current, line)

	if len(a.current) < a.size {
		return nil
	}

	done := a.current
	a.current = make(Group, 0, a.size)

	return []Group{done}
}

func (a *fixedSizeAcc) flush() ([]Group, error) {
	if len(a.current) == 0 {
		return nil, nil
	}

	if !a.allowShortTail {
		return nil, errors.Wrapf(ErrSizeMismatch, "%d lines, groups of %d", a.seen, a.size)
	}

	return []Group{a.current}, nil
}

type marker struct {
	isMarker func(line string) bool
}

// Marker starts a new group on every line for which isMarker is true. Lines
// before the first marker form a leading group of their own.
func Marker(isMarker func(line string) bool) Strategy {
	return marker{isMarker: isMarker}
}

func (m marker) newAccumulator() (accumulator, error) {
	if m.isMarker == nil {
		return nil, ErrNilPredicate
	}

	return &markerAcc{marker: m}, nil
}

type markerAcc struct {
	marker
	current Group
}

func (a *markerAcc) push(line string) []Group {
	if !a.isMarker(line) {
		a.current = append(a.current, line)

		return nil
	}

	done := a.current
	a.current = Group{line}

	if len(done) == 0 {
		return nil
	}

	return []Group{done}
}

func (a *markerAcc) flush() ([]Group, error) {
	if len(a.current) == 0 {
		return nil, nil
	}

	return []Group{a.current}, nil
}

type none struct{}

// None puts every line in a group of its own.
func None() Strategy {
	return none{}
}

func (none) newAccumulator() (accumulator, error) {
	return none{}, nil
}

func (none) push(line string) []Group {
	return []Group{{line}}
}

func (none) flush() ([]Group, error) {
	return nil, nil
}
