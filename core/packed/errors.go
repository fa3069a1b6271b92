// core/packed/errors.go
package packed

import "fmt"

// ParseError reports the first invalid character seen by Parse or ParseBytes.
// Pos is the byte offset in the input; Err is the underlying nuc error.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("position %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
