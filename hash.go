// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package primvec

import (
	"encoding/binary"
	"math"

	murmur "github.com/aviddiviner/go-murmur"
)

// hashSeed is mixed into every vector hash
const hashSeed = uint64(0x9e3779b97f4a7c15)

// Hash returns an order sensitive 64 bit murmur hash of the elements.
// Equal vectors hash identically; in particular -0 and +0 hash the same.
func (v *Vector[T]) Hash() uint64 {
	buf := make([]byte, 0, v.Len()*int(KindOf[T]().Size()))
	for _, x := range v.elems() {
		buf = appendScalar(buf, x)
	}
	return murmur.MurmurHash64A(buf, hashSeed)
}

// appendScalar appends the little endian encoding of x to dst, with
// negative zero rewritten to positive zero so that values equal under ==
// encode identically.
func appendScalar[T Scalar](dst []byte, x T) []byte {
	switch x := any(x).(type) {
	case bool:
		if x {
			return append(dst, 1)
		}
		return append(dst, 0)
	case int8:
		return append(dst, byte(x))
	case uint8:
		return append(dst, x)
	case int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(x))
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, x)
	case int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(x))
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, x)
	case int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(x))
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, x)
	case float32:
		if x == 0 {
			x = 0
		}
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(x))
	case float64:
		if x == 0 {
			x = 0
		}
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(x))
	}
	panic("unreachable")
}
