package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Value is one decoded JSON value: *Object, []Value, string, json.Number,
// bool, or nil.
type Value interface{}

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object whose member order is preserved exactly as it
// appeared on the wire. Keys are unique; order is significant.
type Object struct {
	Members []Member
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing key in place, or appends a new
// member when the key is absent.
func (o *Object) Set(key string, value Value) {
	for i, m := range o.Members {
		if m.Key == key {
			o.Members[i].Value = value
			return
		}
	}
	o.Members = append(o.Members, Member{Key: key, Value: value})
}

// Keys returns the object's keys in document order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

// SortedByKey returns a freshly built object holding the same members with
// keys in ascending byte-wise order. Values are carried over untouched.
func (o *Object) SortedByKey() *Object {
	sorted := &Object{Members: make([]Member, len(o.Members))}
	copy(sorted.Members, o.Members)
	sort.SliceStable(sorted.Members, func(i, j int) bool {
		return sorted.Members[i].Key < sorted.Members[j].Key
	})
	return sorted
}

// DecodeDocument parses data as a JSON document whose top level is an
// object, preserving member order at every nesting level.
func DecodeDocument(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	obj, ok := val.(*Object)
	if !ok {
		return nil, fmt.Errorf("document root is %T, want an object", val)
	}

	// Reject trailing garbage after the closing brace.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after document root")
	}
	return obj, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool, or nil.
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := &Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, Member{Key: key, Value: val})
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing object end: %w", err)
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]Value, error) {
	arr := []Value{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing array end: %w", err)
	}
	return arr, nil
}

// EncodeDocument renders the document pretty-printed with two-space
// indentation and a single trailing newline, members in stored order.
func EncodeDocument(obj *Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, obj, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value, depth int) error {
	switch val := v.(type) {
	case *Object:
		return encodeObject(buf, val, depth)
	case []Value:
		return encodeArray(buf, val, depth)
	case string, bool, nil:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encoding scalar: %w", err)
		}
		buf.Write(raw)
		return nil
	case json.Number:
		buf.WriteString(val.String())
		return nil
	default:
		return fmt.Errorf("cannot encode value of type %T", v)
	}
}

func encodeObject(buf *bytes.Buffer, obj *Object, depth int) error {
	if len(obj.Members) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	inner := indent(depth + 1)
	for i, m := range obj.Members {
		buf.WriteString(inner)
		raw, err := json.Marshal(m.Key)
		if err != nil {
			return fmt.Errorf("encoding key %q: %w", m.Key, err)
		}
		buf.Write(raw)
		buf.WriteString(": ")
		if err := encodeValue(buf, m.Value, depth+1); err != nil {
			return err
		}
		if i < len(obj.Members)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent(depth))
	buf.WriteByte('}')
	return nil
}

func encodeArray(buf *bytes.Buffer, arr []Value, depth int) error {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteString("[\n")
	inner := indent(depth + 1)
	for i, v := range arr {
		buf.WriteString(inner)
		if err := encodeValue(buf, v, depth+1); err != nil {
			return err
		}
		if i < len(arr)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent(depth))
	buf.WriteByte(']')
	return nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
