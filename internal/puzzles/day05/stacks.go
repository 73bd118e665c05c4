package day05

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/parse"
)

var (
	ErrUnknownStack = errors.New("unknown stack")
	ErrEmptyStack   = errors.New("not enough crates")
)

// cellWidth is the width of one "[X] " column of the drawing.
const cellWidth = 4

// Stacks holds crates per stack, bottom first, and the stack names in drawing
// order.
type Stacks struct {
	names  []string
	crates map[string][]byte
}

// ParseDrawing reads the stacks drawing; its last line names the stacks.
func ParseDrawing(lines []string) (*Stacks, error) {
	if len(lines) == 0 {
		return nil, parse.Errorf("", "a drawing of stacks")
	}

	nameLine := lines[len(lines)-1]

	names := strings.Fields(nameLine)
	if len(names) == 0 {
		return nil, parse.Errorf(nameLine, "stack names")
	}

	stacks := &Stacks{names: make([]string, 0, len(names)), crates: map[string][]byte{}}

	for _, token := range names {
		name, err := parse.Name(token)
		if err != nil {
			return nil, err
		}

		if _, ok := stacks.crates[name]; ok {
			return nil, parse.Errorf(nameLine, "unique stack names, %q is repeated", name)
		}

		stacks.names = append(stacks.names, name)
		stacks.crates[name] = []byte{}
	}

	for i := len(lines) - 2; i >= 0; i-- {
		err := stacks.addLayer(lines[i])
		if err != nil {
			return nil, err
		}
	}

	return stacks, nil
}

// addLayer stacks one line of crates on top of the current ones.
func (s *Stacks) addLayer(line string) error {
	for col := 0; col*cellWidth < len(line); col++ {
		cell := line[col*cellWidth : min(col*cellWidth+cellWidth-1, len(line))]
		if strings.TrimSpace(cell) == "" {
			continue
		}

		if len(cell) != 3 || cell[0] != '[' || cell[2] != ']' || cell[1] == ' ' {
			return parse.Errorf(line, "crates drawn as [X], got %q in column %d", cell, col+1)
		}

		if col >= len(s.names) {
			return parse.Errorf(line, "at most %d columns of crates", len(s.names))
		}

		name := s.names[col]
		s.crates[name] = append(s.crates[name], cell[1])
	}

	return nil
}

// Clone returns an independent copy.
func (s *Stacks) Clone() *Stacks {
	res := &Stacks{names: slices.Clone(s.names), crates: make(map[string][]byte, len(s.crates))}
	for name, crates := range s.crates {
		res.crates[name] = slices.Clone(crates)
	}

	return res
}

func (s *Stacks) take(name string, count int) ([]byte, error) {
	crates, ok := s.crates[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStack, "%q", name)
	}

	if count > len(crates) {
		return nil, errors.Wrapf(ErrEmptyStack, "moving %d crates from stack %s holding %d", count, name, len(crates))
	}

	taken := slices.Clone(crates[len(crates)-count:])
	s.crates[name] = crates[:len(crates)-count]

	return taken, nil
}

// Apply moves crates. With oneByOne the crates are lifted one at a time, so
// they land in reverse order; otherwise they move together and keep their
// order. Moving crates onto their own stack leaves it unchanged.
func (s *Stacks) Apply(move Move, oneByOne bool) error {
	if _, ok := s.crates[move.To]; !ok {
		return errors.Wrapf(ErrUnknownStack, "%q", move.To)
	}

	taken, err := s.take(move.From, move.Count)
	if err != nil {
		return err
	}

	if oneByOne && move.From != move.To {
		slices.Reverse(taken)
	}

	s.crates[move.To] = append(s.crates[move.To], taken...)

	return nil
}

// Top returns the top crate of every stack in drawing order. Empty stacks are
// skipped.
func (s *Stacks) Top() string {
	var sb strings.Builder

	for _, name := range s.names {
		if crates := s.crates[name]; len(crates) > 0 {
			sb.WriteByte(crates[len(crates)-1])
		}
	}

	return sb.String()
}

// Move is one "move <count> from <from> to <to>" instruction.
type Move struct {
	Count int
	From  string
	To    string
}

func ParseMove(line string) (Move, error) {
	fields, err := parse.Fields(line, " ", 6)
	if err != nil {
		return Move{}, err
	}

	for i, want := range []string{"move", "", "from", "", "to"} {
		if want == "" {
			continue
		}

		if err := parse.Literal(fields[i], want); err != nil {
			return Move{}, errors.Wrapf(err, "in %q", line)
		}
	}

	count, err := parse.Int[uint16](fields[1])
	if err != nil {
		return Move{}, err
	}

	from, err := parse.Name(fields[3])
	if err != nil {
		return Move{}, err
	}

	to, err := parse.Name(fields[5])
	if err != nil {
		return Move{}, err
	}

	return Move{Count: int(count), From: from, To: to}, nil
}
