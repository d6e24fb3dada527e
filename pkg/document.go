package modbump

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf16"
)

// Kind identifies which field of a Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a single JSON value. Numbers keep their literal text so they are
// written back exactly as they were read.
type Value struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	Str    string
	Array  []Value
	Object *Object
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers the order its keys were first seen in.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Set replaces the value under key in place, or appends a new member if the
// key is not present yet.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// DecodeDocument reads a single JSON object from r. Anything other than
// exactly one object (an empty input, a non-object root, trailing data) is an
// error.
func DecodeDocument(r io.Reader) (*Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := nextToken(dec)
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("document root must be a JSON object, got %s", describeToken(tok))
	}
	obj, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("extra data after JSON object")
	}
	if err := checkSurrogates(data); err != nil {
		return nil, err
	}
	return obj, nil
}

// checkSurrogates rejects \u escapes that name half of a UTF-16 surrogate
// pair without the other half. encoding/json would silently decode them to
// U+FFFD. data must already be valid JSON.
func checkSurrogates(data []byte) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		if data[i+1] != 'u' {
			i++
			continue
		}
		r1 := hexRune(data[i+2 : i+6])
		if !utf16.IsSurrogate(r1) {
			i += 5
			continue
		}
		if i+12 <= len(data) && data[i+6] == '\\' && data[i+7] == 'u' &&
			utf16.DecodeRune(r1, hexRune(data[i+8:i+12])) != unicode.ReplacementChar {
			i += 11
			continue
		}
		return fmt.Errorf("invalid \\u escape at offset %d: unpaired surrogate", i)
	}
	return nil
}

func hexRune(b []byte) rune {
	n, err := strconv.ParseUint(string(b), 16, 32)
	if err != nil {
		return unicode.ReplacementChar
	}
	return rune(n)
}

// decodeObject reads members up to and including the closing brace. The
// opening brace has already been consumed.
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %s", describeToken(tok))
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	if _, err := nextToken(dec); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]Value, error) {
	arr := []Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := nextToken(dec); err != nil {
		return nil, err
	}
	return arr, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := nextToken(dec)
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj, err := decodeObject(dec)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindObject, Object: obj}, nil
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindArray, Array: arr}, nil
		}
		return Value{}, fmt.Errorf("unexpected %s", describeToken(tok))
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Number: t}, nil
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// nextToken is dec.Token with a running-out-of-input EOF reported as such.
func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected end of JSON input")
	}
	return tok, err
}

func describeToken(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		return fmt.Sprintf("%q", string(t))
	case bool:
		return KindBool.String()
	case json.Number:
		return KindNumber.String()
	case string:
		return KindString.String()
	case nil:
		return KindNull.String()
	}
	return fmt.Sprintf("%T", tok)
}

// MarshalIndent renders the object with two space indentation and a trailing
// newline. Non-ASCII text and the characters <, > and & are written as is.
func (o *Object) MarshalIndent() ([]byte, error) {
	var compact bytes.Buffer
	if err := writeObject(&compact, o); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Encode writes the output of MarshalIndent to w.
func (o *Object) Encode(w io.Writer) error {
	data, err := o.MarshalIndent()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeObject(buf *bytes.Buffer, o *Object) error {
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, m.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, m.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v Value) error {
	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if v.Number == "" {
			return errors.New("empty number literal")
		}
		buf.WriteString(v.Number.String())
	case KindString:
		return writeString(buf, v.Str)
	case KindArray:
		buf.WriteByte('[')
		for i, elem := range v.Array {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		if v.Object == nil {
			buf.WriteString("{}")
			return nil
		}
		return writeObject(buf, v.Object)
	default:
		return fmt.Errorf("unknown value kind %s", v.Kind)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
