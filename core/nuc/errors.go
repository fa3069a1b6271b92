// core/nuc/errors.go
package nuc

import "fmt"

// InvalidBaseError reports a character that names no nucleotide.
type InvalidBaseError byte

func (e InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid nucleotide %q", byte(e))
}

// InvalidCodeError reports a 2-bit code outside 0..3.
type InvalidCodeError uint8

func (e InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid nucleotide code %d", uint8(e))
}
