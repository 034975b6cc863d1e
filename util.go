// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package primvec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
	"unsafe"
)

// Kind identifies the element type of a vector in serialized form
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindUint8:   "uint8",
	KindInt16:   "int16",
	KindUint16:  "uint16",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindInt64:   "int64",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

var kindSizes = [...]uint{
	KindBool: 1, KindInt8: 1, KindUint8: 1,
	KindInt16: 2, KindUint16: 2,
	KindInt32: 4, KindUint32: 4, KindFloat32: 4,
	KindInt64: 8, KindUint64: 8, KindFloat64: 8,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Size is the width of one element in bytes
func (k Kind) Size() uint {
	if int(k) < len(kindSizes) {
		return kindSizes[k]
	}
	return 0
}

// KindOf reports the Kind of element type T
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int8:
		return KindInt8
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case uint16:
		return KindUint16
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}
	return KindInvalid
}

var isLittleEndian bool

func init() {
	buf := []byte{0x1, 0x0}
	val := (*uint16)(unsafe.Pointer(unsafe.SliceData(buf)))
	isLittleEndian = *val == uint16(1)
}

func unsafeSliceToBytes[T Scalar](space []T) []byte {
	var zero T
	data := (*byte)(unsafe.Pointer(unsafe.SliceData(space)))
	return unsafe.Slice(data, len(space)*int(unsafe.Sizeof(zero)))
}

// writeSlice writes the packed little endian elements of v, without a
// length prefix
func writeSlice[T Scalar](w io.Writer, v []T) (n int64, err error) {
	if isLittleEndian {
		// no per element conversion
		var np int
		np, err = w.Write(unsafeSliceToBytes(v))
		n += int64(np)
		return
	}
	if err = binary.Write(w, binary.LittleEndian, v); err == nil {
		n += int64(len(v)) * int64(KindOf[T]().Size())
	}
	return
}

// readChunk bounds how many elements readSlice allocates ahead of the
// data it has actually read
const readChunk = 1 << 16

// readSlice reads length elements.  length comes from a header and is not
// trusted: the slice grows one chunk at a time as elements arrive.
func readSlice[T Scalar](r io.Reader, length int) (v []T, n int64, err error) {
	v = make([]T, 0, min(length, readChunk))
	for len(v) < length {
		start := len(v)
		step := min(length-start, readChunk)
		v = slices.Grow(v, step)[:start+step]
		var x int64
		x, err = readElems(r, v[start:], start)
		n += x
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				err = fmt.Errorf("truncated after %d of %d elements: %w",
					start+int(x)/int(KindOf[T]().Size()), length, err)
			}
			return nil, n, err
		}
	}
	return v, n, nil
}

// readElems fills dst.  offset is the index of dst[0] in the whole vector.
func readElems[T Scalar](r io.Reader, dst []T, offset int) (n int64, err error) {
	if isLittleEndian {
		raw := unsafeSliceToBytes(dst)
		var np int
		np, err = io.ReadFull(r, raw)
		n = int64(np)
		if err != nil || KindOf[T]() != KindBool {
			return n, err
		}
		// any byte other than 0 or 1 is not a valid bool
		for ix, b := range raw {
			if b > 1 {
				return n, fmt.Errorf("invalid bool encoding %#x at element %d", b, offset+ix)
			}
		}
		return n, nil
	}
	if err = binary.Read(r, binary.LittleEndian, dst); err != nil {
		return
	}
	return int64(len(dst)) * int64(KindOf[T]().Size()), nil
}
