package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrOptionalNull = errors.New("optional field must not be null")

// Optional distinguishes an absent field from one explicitly set to its
// zero value, e.g. a description cleared to "".
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// UnmarshalJSON is only called for keys present in the document, which is
// what marks the field as set. An explicit null is rejected.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrOptionalNull
	}

	var v T
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	o.Value = v
	o.Set = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
