package services

import (
	"bytes"
	"encoding/json"
)

// Optional records whether a JSON field was present and whether it was null,
// so partial updates can tell "omitted" apart from "cleared".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (field *Optional[T]) UnmarshalJSON(data []byte) error {
	field.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		field.Null = true
		var zero T
		field.Value = zero
		return nil
	}
	field.Null = false
	return json.Unmarshal(data, &field.Value)
}

// present reports a supplied, non-null value.
func (field Optional[T]) present() bool {
	return field.Set && !field.Null
}
