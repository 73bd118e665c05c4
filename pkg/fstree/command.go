package fstree

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-puzzlepipe/pkg/grouper"
	"github.com/askiada/go-puzzlepipe/pkg/parse"
)

// Prompt starts every command line of a terminal trace.
const Prompt = "$ "

// IsCommand reports whether line is a command rather than command output.
func IsCommand(line string) bool {
	return strings.HasPrefix(line, Prompt)
}

// Command is one command of a terminal trace with the lines it printed.
type Command struct {
	Name   string
	Arg    string
	Output []string
}

// ParseCommand reads a group whose first line is a command and whose other
// lines are its output.
func ParseCommand(group grouper.Group) (Command, error) {
	if len(group) == 0 {
		return Command{}, parse.Errorf("", "a command")
	}

	line := group[0]
	if !IsCommand(line) {
		return Command{}, parse.Errorf(line, "a line starting with %q", Prompt)
	}

	cmd := Command{Output: group[1:]}
	fields := strings.Split(strings.TrimPrefix(line, Prompt), " ")

	switch fields[0] {
	case "cd":
		if len(fields) != 2 || fields[1] == "" {
			return Command{}, parse.Errorf(line, "cd with one argument")
		}

		if len(cmd.Output) > 0 {
			return Command{}, parse.Errorf(cmd.Output[0], "no output after cd")
		}

		cmd.Name, cmd.Arg = fields[0], fields[1]
	case "ls":
		if len(fields) != 1 {
			return Command{}, parse.Errorf(line, "ls without argument")
		}

		cmd.Name = fields[0]
	default:
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", line)
	}

	return cmd, nil
}
