// package reflectx reads and writes struct fields by name, including
// unexported ones.
//
// Fields promoted from embedded structs are found the same way the
// selector expression would find them.
package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	// ErrNoField is returned when the named field does not exist
	ErrNoField = errors.New("no such field")
	// ErrNotStruct is returned when the target is not a struct or a
	// pointer to one
	ErrNotStruct = errors.New("not a struct")
	// ErrNotAddressable is returned by SetFieldValue when the target
	// was not passed by pointer
	ErrNotAddressable = errors.New("struct is not addressable, pass a pointer")
)

// FieldValue returns the value of the field called name in obj, which
// is a struct or a pointer to one
func FieldValue(obj any, name string) (any, error) {
	rv, err := structValue(obj)
	if err != nil {
		return nil, err
	}
	if !rv.CanAddr() {
		// unexported fields can only be reached through an address
		tmp := reflect.New(rv.Type()).Elem()
		tmp.Set(rv)
		rv = tmp
	}
	f, err := field(rv, name)
	if err != nil {
		return nil, err
	}
	return f.Interface(), nil
}

// SetFieldValue stores value in the field called name of the struct obj
// points to.  A nil value stores the zero value.
func SetFieldValue(obj any, name string, value any) error {
	rv, err := structValue(obj)
	if err != nil {
		return err
	}
	if !rv.CanAddr() {
		return ErrNotAddressable
	}
	f, err := field(rv, name)
	if err != nil {
		return err
	}
	if value == nil {
		f.SetZero()
		return nil
	}
	val := reflect.ValueOf(value)
	if !val.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("field %s: cannot assign %s to %s", name, val.Type(), f.Type())
	}
	f.Set(val)
	return nil
}

// Fields lists the fields of struct type t followed, recursively, by
// the fields of every struct it embeds
func Fields(t reflect.Type) []reflect.StructField {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	fields := make([]reflect.StructField, 0, t.NumField())
	var embedded []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fields = append(fields, sf)
		if sf.Anonymous {
			embedded = append(embedded, sf.Type)
		}
	}
	for _, et := range embedded {
		fields = append(fields, Fields(et)...)
	}
	return fields
}

func structValue(obj any) (reflect.Value, error) {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %s", ErrNotStruct, rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrNotStruct, rv.Kind())
	}
	return rv, nil
}

// field resolves name in the addressable struct rv, lifting the
// read-only flag that reflect puts on unexported fields
func field(rv reflect.Value, name string) (reflect.Value, error) {
	sf, ok := rv.Type().FieldByName(name)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s", ErrNoField, rv.Type(), name)
	}
	f, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("field %s: %w", name, err)
	}
	if !f.CanSet() && f.CanAddr() {
		f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	}
	return f, nil
}
