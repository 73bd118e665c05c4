// Package linesource feeds puzzle pipelines with the lines of their input.
//
// Lines come out in input order with their terminator ("\n" or "\r\n")
// removed. A final line without terminator is still emitted, an empty input
// emits nothing. Lines longer than MaxLineSize are reported as an error.
//
// Every failure to open or read the input is an *Error, which matches ErrIO:
//
//	if errors.Is(err, linesource.ErrIO) {
//		// input missing or unreadable
//	}
package linesource
