// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package primvec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unsafe"
)

// vectorVersion is a version number for the on disk representation
// format.  Any time incompatible changes are made, it is bumped
const vectorVersion = uint64(0x0001)

// Header describes a serialized vector
type Header struct {
	// a version number which changes as the storage representation
	// changes
	Version uint64
	// the element Kind, widened
	Kind uint64
	// the number of elements that follow the header
	Length uint64
}

// HeaderSize is the number of bytes a Header occupies on disk
const HeaderSize = int64(unsafe.Sizeof(Header{}))

// ElemKind returns the element Kind recorded in the header
func (h Header) ElemKind() Kind {
	if h.Kind > math.MaxUint8 {
		return KindInvalid
	}
	return Kind(h.Kind)
}

// ReadHeader reads and validates a vector header from a stream
func ReadHeader(stream io.Reader) (h Header, err error) {
	if err = binary.Read(stream, binary.LittleEndian, &h); err != nil {
		return
	}
	if h.Version != vectorVersion {
		return h, fmt.Errorf("incompatible file format: version is %d, expected %d",
			h.Version, vectorVersion)
	}
	if h.ElemKind().Size() == 0 {
		return h, fmt.Errorf("unknown element kind %d", h.Kind)
	}
	if h.Length > uint64(math.MaxInt)/uint64(h.ElemKind().Size()) {
		return h, fmt.Errorf("element count %d does not fit in memory", h.Length)
	}
	return
}

// WriteTo allows the vector to be written to a stream.  Only the live
// elements are written; capacity is not preserved.
func (v *Vector[T]) WriteTo(stream io.Writer) (i int64, err error) {
	h := Header{
		Version: vectorVersion,
		Kind:    uint64(KindOf[T]()),
		Length:  uint64(v.Len()),
	}
	if err = binary.Write(stream, binary.LittleEndian, h); err != nil {
		return
	}
	i += HeaderSize

	x, err := writeSlice(stream, v.elems())
	i += x
	return
}

// ReadFrom replaces the contents of the vector with a vector read from
// a stream.  On error the vector is left unchanged.
func (v *Vector[T]) ReadFrom(stream io.Reader) (i int64, err error) {
	h, err := ReadHeader(stream)
	if err != nil {
		return
	}
	i += HeaderSize
	if want := KindOf[T](); h.ElemKind() != want {
		return i, fmt.Errorf("stream holds %s elements, expected %s", h.ElemKind(), want)
	}
	space, n, err := readSlice[T](stream, int(h.Length))
	i += n
	if err != nil {
		return i, fmt.Errorf("failed to read %d elements: %w", h.Length, err)
	}
	v.space, v.used = space, len(space)
	return
}
