// Package parse holds the small, pure helpers puzzle parsers are written
// with. Every failure is a *Error carrying the offending text.
package parse

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Fields splits line around sep and requires exactly n tokens.
func Fields(line, sep string, n int) ([]string, error) {
	fields := strings.Split(line, sep)
	if len(fields) != n {
		return nil, Errorf(line, "%d fields separated by %q, got %d", n, sep, len(fields))
	}

	return fields, nil
}

// Literal checks that a token is exactly want.
func Literal(token, want string) error {
	if token != want {
		return Errorf(token, "%q", want)
	}

	return nil
}

// Int parses a base-10 integer that must fit in T.
func Int[T constraints.Integer](s string) (T, error) {
	var zero T

	// T is signed when its zero minus one wraps below zero.
	if zero-1 < zero {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, &Error{Text: s, Expected: "an integer", Err: unwrapNum(err)}
		}

		if int64(T(v)) != v {
			return zero, &Error{Text: s, Expected: "an integer in range", Err: strconv.ErrRange}
		}

		return T(v), nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, &Error{Text: s, Expected: "a non-negative integer", Err: unwrapNum(err)}
	}

	if uint64(T(v)) != v {
		return zero, &Error{Text: s, Expected: "a non-negative integer in range", Err: strconv.ErrRange}
	}

	return T(v), nil
}

func unwrapNum(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}

	return err
}

// Name accepts a non-empty token without whitespace or slash, such as a
// stack or directory name.
func Name(s string) (string, error) {
	if s == "" || s == "." || s == ".." {
		return "", Errorf(s, "a name")
	}

	if strings.ContainsRune(s, '/') || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", Errorf(s, "a name without slash or whitespace")
	}

	return s, nil
}

// Enum looks s up in table.
func Enum[T any](s string, table map[string]T) (T, error) {
	v, ok := table[s]
	if ok {
		return v, nil
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, strconv.Quote(k))
	}

	sort.Strings(keys)

	var zero T

	return zero, Errorf(s, "one of %s", strings.Join(keys, ", "))
}

// Lines parses every line with fn. The first failure is returned with the
// 1-based number of the line.
func Lines[T any](lines []string, fn func(line string) (T, error)) ([]T, error) {
	res := make([]T, 0, len(lines))

	for i, line := range lines {
		v, err := fn(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}

		res = append(res, v)
	}

	return res, nil
}
