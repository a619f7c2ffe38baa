// Package pipeline contains the messages sent by a scoring pipeline while it runs.
package pipeline

import "github.com/hscells/wsieval/eval"

// ResultType is the type of result being returned through a pipeline channel.
type ResultType uint8

const (
	// Group is the score of a single head.
	Group ResultType = iota
	// Summary is the dataset level summary, sent once every group has been scored.
	Summary
	// Error indicates an error was raised.
	Error
	// Done indicates the pipeline has completed.
	Done
)

func (t ResultType) String() string {
	switch t {
	case Group:
		return "group"
	case Summary:
		return "summary"
	case Error:
		return "error"
	case Done:
		return "done"
	}
	return "unknown"
}

// Result is the output of a scoring pipeline.
type Result struct {
	// Index is the position of the group in the input, in order of first appearance of its head.
	Index   int
	Group   eval.GroupResult
	Summary eval.Summary
	// Cached is true when the group result was read from a cache rather than computed.
	Cached bool
	Type   ResultType
	Error  error
}
