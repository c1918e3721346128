package ozo

import (
	"reflect"

	"github.com/pkg/errors"
)

// SizeOf returns the encoded byte length of v.
//
// For a type with a fixed size class the declared size is returned no matter
// what v contains. For dynamically sized types:
//
//   - text and bytea values return their element count;
//   - a slice or array returns 0 when empty, otherwise its length multiplied
//     by the size of its first element. All elements of a sequence are
//     assumed to encode to the same length; sequences of variable-length
//     elements with differing lengths are not handled here and belong to the
//     encoder.
//
// Other dynamically sized values (composite or custom types) have no length
// computable from metadata alone and return an error, as does a value of an
// unregistered type.
func SizeOf(v any) (int, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return 0, errors.New("cannot compute byte length of nil")
	}
	desc, ok := DescriptorForType(t)
	if !ok {
		return 0, errors.Errorf("no type descriptor registered for %s", t)
	}
	if !desc.Size.Dynamic() {
		return int(desc.Size), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len(), nil
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return rv.Len(), nil
		}
		if rv.Len() == 0 {
			return 0, nil
		}
		elemSize, err := SizeOf(rv.Index(0).Interface())
		if err != nil {
			return 0, err
		}
		return rv.Len() * elemSize, nil
	}
	return 0, errors.Errorf("cannot compute byte length of %s value", desc.Name)
}
