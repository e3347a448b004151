package vector4

import (
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a byte buffer holds fewer than four lanes.
var ErrShortBuffer = errors.New("vector4: buffer shorter than 4 lanes")

func shortBuffer(got, need int) error {
	return fmt.Errorf("%w: got %d bytes, need %d", ErrShortBuffer, got, need)
}
