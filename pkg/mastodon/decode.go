package mastodon

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fedigo-io/mastodon-client/pkg/generation"
)

// DecodeEntity fills dst (a pointer to an entity struct) from a JSON object,
// projecting the payload onto the shape of the compiled target generation:
//
//   - a field whose `flag` tag is inactive at the target is never populated;
//     its raw value, if sent, is routed to the entity's Extra map,
//   - an active field present in the payload populates normally,
//   - an active Optional (or pointer/slice/map) field missing from the
//     payload stays in its explicit absent state,
//   - an active field of any other type is guaranteed-present: its absence,
//     or an explicit null, is a *DecodeError,
//   - keys not declared by the struct land in the Extra map, so servers
//     newer than the target never break decoding.
//
// Entities implement json.Unmarshaler in terms of DecodeEntity, so the same
// projection applies wherever they appear: top level, nested, in lists, or
// in streaming frames.
func DecodeEntity(data []byte, dst interface{}) error {
	value := reflect.ValueOf(dst)
	if value.Kind() != reflect.Ptr || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return &DecodeError{Detail: fmt.Sprintf("decode target must be a non-nil struct pointer, got %T", dst)}
	}
	elem := value.Elem()
	structType := elem.Type()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Detail: fmt.Sprintf("decoding %s", structType.Name()), Err: err}
	}
	if raw == nil {
		return &DecodeError{Detail: fmt.Sprintf("decoding %s: payload is null", structType.Name())}
	}

	consumed := make(map[string]bool, len(raw))
	var extraField reflect.Value

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		if field.Name == "Extra" {
			extraField = elem.Field(i)
			continue
		}
		name := jsonFieldName(field)
		if name == "" {
			continue
		}

		if flagName, ok := field.Tag.Lookup("flag"); ok {
			flag := generation.Flag(flagName)
			if !generation.Known(flag) {
				return &DecodeError{Detail: fmt.Sprintf("%s.%s references unknown capability flag %q",
					structType.Name(), field.Name, flagName)}
			}
			if !generation.Active(flag) {
				// Inactive at the target generation: the value, if any,
				// is preserved in Extra but never shapes the entity.
				continue
			}
		}

		rawValue, present := raw[name]
		if !present {
			if absentTolerant(field.Type) {
				consumed[name] = true
				continue
			}
			return &DecodeError{Detail: fmt.Sprintf("%s: required field %q missing", structType.Name(), name)}
		}
		consumed[name] = true

		if string(rawValue) == "null" && !absentTolerant(field.Type) {
			return &DecodeError{Detail: fmt.Sprintf("%s: required field %q is null", structType.Name(), name)}
		}
		if err := json.Unmarshal(rawValue, elem.Field(i).Addr().Interface()); err != nil {
			return &DecodeError{Detail: fmt.Sprintf("%s: field %q", structType.Name(), name), Err: err}
		}
	}

	if extraField.IsValid() && extraField.Kind() == reflect.Map {
		extra := map[string]json.RawMessage{}
		for key, rawValue := range raw {
			if !consumed[key] {
				extra[key] = rawValue
			}
		}
		if len(extra) > 0 {
			extraField.Set(reflect.ValueOf(extra))
		}
	}
	return nil
}

// absentTolerant reports whether a missing payload key is representable for
// the field type: Optional carries an explicit absent state, and pointers,
// slices, and maps degrade to nil. Anything else is guaranteed-present.
func absentTolerant(t reflect.Type) bool {
	if t.Implements(absentKindType) {
		return true
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map:
		return true
	default:
		return false
	}
}

var absentKindType = reflect.TypeOf((*absentKind)(nil)).Elem()

func jsonFieldName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name
	}
	if tag == "-" {
		return ""
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}
