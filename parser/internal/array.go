package internal

import (
	"bytes"

	json "github.com/json-iterator/go"
)

var jsonNull = []byte("null")

// oneOrMany holds the values of a BPMN JSON property, which is either absent, a single value or an array of values.
// An empty string, that results from an empty XML element, is kept as placeholder.
type oneOrMany[T any] struct {
	items []item[T]
}

type item[T any] struct {
	value T
	empty bool
}

// newOneOrMany creates a value, which holds the given values.
func newOneOrMany[T any](values ...T) oneOrMany[T] {
	items := make([]item[T], len(values))
	for i := range values {
		items[i] = item[T]{value: values[i]}
	}
	return oneOrMany[T]{items: items}
}

// UnmarshalJSON never fails: a value, that cannot be decoded into T, is treated like an empty string.
func (v *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	v.items = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	if data[0] != '[' {
		v.add(data)
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil
	}
	for _, raw := range raws {
		v.add(raw)
	}
	return nil
}

func (v *oneOrMany[T]) add(raw []byte) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return
	}
	if string(raw) == `""` {
		v.items = append(v.items, item[T]{empty: true})
		return
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		v.items = append(v.items, item[T]{empty: true})
		return
	}
	v.items = append(v.items, item[T]{value: value})
}

// ensureArray normalizes a one-or-many value into a sequence.
// Empty strings are dropped, unless acceptEmptyString is true. In this case, each of them results in a zero T.
func ensureArray[T any](v oneOrMany[T], acceptEmptyString bool) []T {
	values := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if item.empty && !acceptEmptyString {
			continue
		}
		values = append(values, item.value)
	}
	return values
}

// first returns the first normalized value.
func first[T any](v oneOrMany[T], acceptEmptyString bool) (T, bool) {
	values := ensureArray(v, acceptEmptyString)
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[0], true
}
