package stock

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// orderedObject builds a JSON object whose keys keep the order they were
// added in, so that persisted records are identical line for line across
// saves. The zero value is an empty object.
type orderedObject struct {
	buf []byte
	err error
}

// Field adds key with value encoded by json.Marshal. After a first failure
// every call is a no-op and MarshalJSON reports the error.
func (o *orderedObject) Field(key string, value any) *orderedObject {
	if o.err != nil {
		return o
	}
	raw, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return o
	}
	if len(o.buf) > 0 {
		o.buf = append(o.buf, ',')
	}
	name, _ := json.Marshal(key)
	o.buf = append(append(append(o.buf, name...), ':'), raw...)
	return o
}

// OmitEmpty adds key only when value is neither a zero value nor an empty map.
func (o *orderedObject) OmitEmpty(key string, value any) *orderedObject {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() || (v.Kind() == reflect.Map && v.Len() == 0) {
		return o
	}
	return o.Field(key, value)
}

// MarshalJSON implements json.Marshaler.
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	out := make([]byte, 0, len(o.buf)+2)
	out = append(out, '{')
	out = append(out, o.buf...)
	return append(out, '}'), nil
}
