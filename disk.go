// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package primvec

import (
	"fmt"
	"os"
)

// ReadHeaderFromPath reads the header of a vector file without loading
// its elements
func ReadHeaderFromPath(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()
	return ReadHeader(f)
}

// OpenFromPath loads a vector previously written with WriteTo
func OpenFromPath[T Scalar](path string) (*Vector[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var v Vector[T]
	if _, err := v.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &v, nil
}

// WriteToPath writes the vector to a new file at path, refusing to
// over-write an existing one
func (v *Vector[T]) WriteToPath(path string) (int64, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := v.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
