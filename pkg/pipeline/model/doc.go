// Package model holds the types shared by the pipeline engine and its options:
// the stages a puzzle pipeline is made of, their descriptions, and the hook
// interface that measure, drawer and logger options implement.
package model
