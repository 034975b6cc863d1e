package primvec

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

var _ msgpack.CustomEncoder = (*Vector[int32])(nil)
var _ msgpack.CustomDecoder = (*Vector[int32])(nil)

// MarshalJSON encodes the elements as a JSON array.  As with any []byte,
// a ByteVector encodes as a base64 string.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.elems())
}

// UnmarshalJSON replaces the contents of the vector with a decoded array
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decoding %s vector: %w", KindOf[T](), err)
	}
	v.space, v.used = values, len(values)
	return nil
}

// EncodeMsgpack writes the elements as a MessagePack array
func (v *Vector[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(v.elems())
}

// DecodeMsgpack replaces the contents of the vector with a decoded array
func (v *Vector[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var values []T
	if err := dec.Decode(&values); err != nil {
		return fmt.Errorf("decoding %s vector: %w", KindOf[T](), err)
	}
	v.space, v.used = values, len(values)
	return nil
}
