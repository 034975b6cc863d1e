package primvec

import "iter"

// Source is an ordered collection of scalars that can be folded into a
// vector by the bulk operations.  It is implemented by both Vector and
// the Values / Seq adapters for foreign sequences.
type Source[T Scalar] interface {
	Len() int
	// ToArray returns the elements in order, in a slice the caller
	// may keep
	ToArray() []T
}

var _ Source[int32] = (*Vector[int32])(nil)
var _ Source[int32] = Values[int32](nil)

// Values adapts a plain slice to a Source
type Values[T Scalar] []T

func (s Values[T]) Len() int {
	return len(s)
}

func (s Values[T]) ToArray() []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Seq drains an iterator into a Source.  The iterator is consumed once,
// immediately.
func Seq[T Scalar](seq iter.Seq[T]) Source[T] {
	var s Values[T]
	for x := range seq {
		s = append(s, x)
	}
	return s
}

// Named vectors for the usual scalar families.  These are aliases, not
// distinct types: CharVector and IntVector are both Vector[int32], and a
// serialized CharVector is described as holding int32 elements.
type (
	BoolVector   = Vector[bool]
	ByteVector   = Vector[byte]
	CharVector   = Vector[rune]
	ShortVector  = Vector[int16]
	IntVector    = Vector[int32]
	LongVector   = Vector[int64]
	FloatVector  = Vector[float32]
	DoubleVector = Vector[float64]
)
