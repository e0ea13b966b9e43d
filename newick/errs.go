package newick

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("newick parse error")

// ParseError reports a syntax error with its position in the input.
type ParseError struct {
	Pos *Pos
	msg string
}

func parseErrf(p *Pos, format string, args ...any) *ParseError {
	return &ParseError{Pos: p, msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrParse, e.msg, e.Pos)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Offset returns the byte offset of the error in the input.
func (e *ParseError) Offset() int { return e.Pos.I }
