// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package primvec

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched (via errors.Is) by every error returned
// when an index lies outside the legal interval of an operation.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNotFound is returned by IndexOf and LastIndexOf when no element
// equals the requested value.
var ErrNotFound = errors.New("value not found")

// IndexError describes a rejected index.  The vector is left untouched
// by any call that returns one.
type IndexError struct {
	// Op is the operation that rejected the index
	Op string
	// Index is the offending index
	Index int
	// Len is the length of the vector at the time of the call
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
