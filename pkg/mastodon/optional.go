package mastodon

import (
	"encoding/json"
	"fmt"
)

type optionalState uint8

const (
	stateAbsent optionalState = iota
	stateNull
	statePresent
)

// Optional is a response field that the server may omit or send as null.
// The three states are kept apart: an absent field is not a null field, and
// neither is ever a silent zero value. The zero Optional is absent.
type Optional[T any] struct {
	value T
	state optionalState
}

// Some returns a present Optional.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, state: statePresent}
}

// Null returns an Optional that was sent explicitly as null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: stateNull}
}

// Get returns the value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == statePresent
}

// MustGet returns the value or panics if none is present.
func (o Optional[T]) MustGet() T {
	if o.state != statePresent {
		panic(fmt.Sprintf("optional: MustGet on %s value", o.stateName()))
	}
	return o.value
}

// OrElse returns the value when present, fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.state == statePresent {
		return o.value
	}
	return fallback
}

// IsPresent reports whether a value was sent.
func (o Optional[T]) IsPresent() bool { return o.state == statePresent }

// IsNull reports whether the server sent an explicit null.
func (o Optional[T]) IsNull() bool { return o.state == stateNull }

// IsAbsent reports whether the field was missing from the response.
func (o Optional[T]) IsAbsent() bool { return o.state == stateAbsent }

func (o Optional[T]) stateName() string {
	switch o.state {
	case stateNull:
		return "null"
	case statePresent:
		return "present"
	default:
		return "absent"
	}
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if o.state == statePresent {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return o.stateName()
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for fields
// present in the payload, so absence survives as the zero (absent) state.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Null[T]()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}

// MarshalJSON implements json.Marshaler. Absent and null both encode to
// null; request structs use pointer fields with omitempty instead, so
// Optional never decides what goes on the wire for writes.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != statePresent {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// absentKind lets the decoder recognize Optional fields without knowing T.
type absentKind interface {
	IsAbsent() bool
}

var _ absentKind = Optional[int]{}
