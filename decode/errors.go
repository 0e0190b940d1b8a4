// Package decode implements the primitive decoder family (spec.md
// §4.B) and the null-mask wrapper (§4.C): a small set of lazy,
// finite, non-restartable cell sequences composed beneath a
// nullability layer.
package decode

import (
	"errors"
	"fmt"
)

// ErrMalformedBuffer covers a truncated value, an RLE run extending
// past end-of-buffer, a dictionary index out of range, or a null
// index list that is out of order or repeats an index (spec.md §7).
// Null indices past the last decoded row are not reported: NullMask
// stops once the inner decoder is drained and leaves them unread.
var ErrMalformedBuffer = errors.New("malformed buffer")

// ErrMisuse covers Next called past exhaustion, or an iterator used
// after a fatal error poisoned it (spec.md §7).
var ErrMisuse = errors.New("decoder misuse")

func malformed(context string, cause error) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedBuffer, context, cause.Error())
}
