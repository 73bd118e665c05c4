// Package reduce folds parsed records into puzzle answers.
package reduce

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	ErrEmpty        = errors.New("no value to reduce")
	ErrInsufficient = errors.New("not enough values")
	ErrInvalidK     = errors.New("k must be greater than 0")
	ErrOverflow     = errors.New("sum overflows")
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}

	return total
}

// CheckedAdd returns a + b, or ErrOverflow when the result does not fit in T.
func CheckedAdd[T constraints.Integer](a, b T) (T, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, errors.Wrapf(ErrOverflow, "adding %d to %d", b, a)
	}

	return sum, nil
}

// CheckedSum is Sum for integers, failing instead of wrapping around.
func CheckedSum[T constraints.Integer](xs []T) (T, error) {
	return CheckedSumBy(xs, func(x T) T { return x })
}

// SumBy adds up fn over xs.
func SumBy[T any, N Number](xs []T, fn func(T) N) N {
	var total N
	for _, x := range xs {
		total += fn(x)
	}

	return total
}

// CheckedSumBy is SumBy for integers, failing instead of wrapping around.
func CheckedSumBy[T any, N constraints.Integer](xs []T, fn func(T) N) (N, error) {
	var total N

	for _, x := range xs {
		next, err := CheckedAdd(total, fn(x))
		if err != nil {
			return 0, err
		}

		total = next
	}

	return total, nil
}

// Count returns how many values match pred.
func Count[T any](xs []T, pred func(T) bool) int {
	n := 0

	for _, x := range xs {
		if pred(x) {
			n++
		}
	}

	return n
}

func Fold[T, A any](xs []T, init A, fn func(acc A, x T) A) A {
	acc := init
	for _, x := range xs {
		acc = fn(acc, x)
	}

	return acc
}

// Min returns the smallest value kept by keep, a nil keep keeps everything.
// It fails with ErrEmpty when nothing is kept.
func Min[T constraints.Ordered](xs []T, keep func(T) bool) (T, error) {
	return pick(xs, keep, func(a, b T) bool { return a < b })
}

// Max is Min for the largest value.
func Max[T constraints.Ordered](xs []T, keep func(T) bool) (T, error) {
	return pick(xs, keep, func(a, b T) bool { return a > b })
}

func pick[T constraints.Ordered](xs []T, keep func(T) bool, better func(a, b T) bool) (T, error) {
	var (
		best  T
		found bool
	)

	for _, x := range xs {
		if keep != nil && !keep(x) {
			continue
		}

		if !found || better(x, best) {
			best = x
			found = true
		}
	}

	if !found {
		return best, ErrEmpty
	}

	return best, nil
}

// TopKSum adds up the k largest values. xs is left untouched. Equal values
// may be picked in any order, which does not change the sum. A sum that does
// not fit in T fails with ErrOverflow.
func TopKSum[T constraints.Integer](xs []T, k int) (T, error) {
	if k <= 0 {
		return 0, errors.Wrapf(ErrInvalidK, "got %d", k)
	}

	if len(xs) < k {
		return 0, errors.Wrapf(ErrInsufficient, "top %d of %d values", k, len(xs))
	}

	sorted := make([]T, len(xs))
	copy(sorted, xs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})

	return CheckedSum(sorted[:k])
}
