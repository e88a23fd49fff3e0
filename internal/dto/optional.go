package dto

import "encoding/json"

// Optional models a tri-state field in a partial update: the field may be
// absent from the JSON body (leave unchanged), explicitly null (clear), or
// carry a value (replace). Plain pointers cannot tell absent from null, so
// the type owns its JSON decoding.
type Optional[T any] struct {
	Defined bool
	Value   *T
}

// UnmarshalJSON is only invoked when the field is present in the body,
// which is what makes Defined reliable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Defined = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Defined || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// IsSet reports that the field was present with a non-null value.
func (o Optional[T]) IsSet() bool {
	return o.Defined && o.Value != nil
}

// IsNull reports that the field was present as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.Defined && o.Value == nil
}

// Get returns the value when IsSet.
func (o Optional[T]) Get() T {
	return *o.Value
}

// SetTo builds a defined Optional holding v. Used by tests and seeds.
func SetTo[T any](v T) Optional[T] {
	return Optional[T]{Defined: true, Value: &v}
}

// Null builds a defined Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Defined: true}
}
