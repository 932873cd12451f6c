package schema

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// ParseJSON decodes a JSON document keeping the key order of every object.
func ParseJSON(data []byte) (any, error) {
	value, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "parseJSON")
	}
	if rest := bytes.TrimSpace(data[end:]); len(rest) > 0 {
		return nil, errors.Errorf("parseJSON: unexpected %q after document", rest)
	}
	return decodeJSON(value, dataType)
}

func decodeJSON(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Object:
		return decodeJSONObject(value)
	case jsonparser.Array:
		return decodeJSONArray(value)
	case jsonparser.String:
		str, err := jsonparser.ParseString(value)
		return str, errors.Wrap(err, "decodeString")
	case jsonparser.Number:
		num, err := jsonparser.ParseFloat(value)
		return num, errors.Wrap(err, "decodeNumber")
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		return b, errors.Wrap(err, "decodeBoolean")
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected value %q", value)
	}
}

func decodeJSONObject(value []byte) (*Object, error) {
	obj := NewObject()
	err := jsonparser.ObjectEach(value, func(key, val []byte, dataType jsonparser.ValueType, _ int) error {
		member, err := decodeJSON(val, dataType)
		if err != nil {
			return errors.Wrapf(err, "key %q", key)
		}
		obj.Set(string(key), member)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decodeObject")
	}
	return obj, nil
}

func decodeJSONArray(value []byte) ([]any, error) {
	items := []any{}
	var itemErr error
	_, err := jsonparser.ArrayEach(value, func(val []byte, dataType jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		} else if err != nil {
			itemErr = err
			return
		}
		item, err := decodeJSON(val, dataType)
		if err != nil {
			itemErr = errors.Wrapf(err, "index %d", len(items))
			return
		}
		items = append(items, item)
	})
	if err == nil {
		err = itemErr
	}
	if err != nil {
		return nil, errors.Wrap(err, "decodeArray")
	}
	return items, nil
}
