package main

const (
	MsgRootShort  = "Solve daily puzzles with a line-oriented pipeline"
	MsgRootLong   = "puzzlepipe reads each puzzle input line by line, groups and parses the lines, then reduces them to the puzzle answers."
	MsgRunShort   = "Solve puzzles from their input files"
	MsgRunLong    = "Run reads the input of every given day (every day when none is given) from input_dir and prints the answers."
	MsgCheckShort = "Solve puzzles on their bundled samples"
	MsgCheckLong  = "Check runs every given day on its sample input and fails when an answer differs from the expected one. Samples always use the default puzzle parameters."
	MsgListShort  = "List the available puzzles"

	MsgAnswer     = "Day %d: %s\n"
	MsgCheckOK    = "Day %d: sample ok\n"
	MsgPuzzleItem = "Day %d: %s\n"

	MsgFlagVerbose  = "Increase verbosity (-v info, -vv debug, -vvv trace)"
	MsgFlagConfig   = "Path to a TOML configuration file"
	MsgFlagStrict   = "Fail when a puzzle input cannot be read"
	MsgFlagMeasure  = "Log per-stage timings"
	MsgFlagGraphDir = "Write a Graphviz drawing of every pipeline into this directory"
)
