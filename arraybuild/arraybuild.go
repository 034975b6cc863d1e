// package arraybuild fills freshly allocated slices with constructed
// values
package arraybuild

// Factory constructs values of T
type Factory[T any] interface {
	Construct() T
}

// FactoryFunc adapts a plain function to a Factory
type FactoryFunc[T any] func() T

func (f FactoryFunc[T]) Construct() T {
	return f()
}

// Cloner is implemented by values that can copy themselves
type Cloner[T any] interface {
	Clone() T
}

// Build returns a slice of size values, each the result of a separate
// call to construct
func Build[T any](size int, construct func() T) []T {
	return BuildWithFactory[T](FactoryFunc[T](construct), size)
}

// BuildWithFactory returns a slice of size values made by f
func BuildWithFactory[T any](f Factory[T], size int) []T {
	out := make([]T, size)
	for i := range out {
		out[i] = f.Construct()
	}
	return out
}

// BuildNew returns size distinct, zero valued *T
func BuildNew[T any](size int) []*T {
	return Build(size, func() *T { return new(T) })
}

// BuildClones returns size independent clones of proto
func BuildClones[T Cloner[T]](proto T, size int) []T {
	return Build(size, proto.Clone)
}
