package puzzle

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry holds puzzles by day.
type Registry struct {
	puzzles map[int]Puzzle
}

func NewRegistry() *Registry {
	return &Registry{puzzles: map[int]Puzzle{}}
}

func (r *Registry) Register(p Puzzle) error {
	if _, ok := r.puzzles[p.Day()]; ok {
		return errors.Wrapf(ErrDuplicateDay, "day %d", p.Day())
	}

	r.puzzles[p.Day()] = p

	return nil
}

func (r *Registry) Get(day int) (Puzzle, error) {
	p, ok := r.puzzles[day]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDay, "day %d", day)
	}

	return p, nil
}

// All returns every puzzle ordered by day.
func (r *Registry) All() []Puzzle {
	res := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		res = append(res, p)
	}

	sort.Slice(res, func(i, j int) bool { return res[i].Day() < res[j].Day() })

	return res
}

// Select returns the puzzles of days, or every puzzle when days is empty.
func (r *Registry) Select(days ...int) ([]Puzzle, error) {
	if len(days) == 0 {
		return r.All(), nil
	}

	res := make([]Puzzle, 0, len(days))

	for _, day := range days {
		p, err := r.Get(day)
		if err != nil {
			return nil, err
		}

		res = append(res, p)
	}

	return res, nil
}
