package fstree

import "github.com/pkg/errors"

var (
	ErrNoRoot         = errors.New("trace must start with cd /")
	ErrAboveRoot      = errors.New("cannot leave the root directory")
	ErrConflict       = errors.New("conflicting entry")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNotFound       = errors.New("no such entry")
)
