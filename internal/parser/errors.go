package parser

import "fmt"

// SyntaxError reports a structural violation: a begin or end marker line
// that does not match its exact literal. It aborts the whole parse; there
// is no partial result. Line is 1-based.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
