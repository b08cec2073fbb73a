package rift

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// Reserved single-key shapes a plain mapping must not collide with.
var reservedKeys = map[string]bool{
	"object": true,
	"@ref":   true,
	"@set":   true,
	"@ts":    true,
	"@date":  true,
	"@obj":   true,
}

// Encode converts v into the tagged wire format. Typed values become their
// single-key tag forms, Exprs emit their fields in insertion order, plain
// mappings emit with sorted keys, and scalars pass through. Values outside
// the supported set fail with *EncodingError.
func Encode(v any) ([]byte, error) {
	var b bytes.Buffer
	if err := encodeTo(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// EncodeIndent is Encode with the output pretty-printed for logs.
func EncodeIndent(v any) ([]byte, error) {
	compact, err := Encode(v)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := json.Indent(&b, compact, "", "  "); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodeTo(b *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		b.WriteString("null")
	case Expr:
		if x.err != nil {
			return x.err
		}
		b.WriteByte('{')
		for i, f := range x.fields {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeKey(b, f.key); err != nil {
				return err
			}
			if err := encodeTo(b, f.value); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case Ref:
		b.WriteString(`{"@ref":`)
		if err := writeString(b, x.value); err != nil {
			return err
		}
		b.WriteByte('}')
	case SetRef:
		b.WriteString(`{"@set":`)
		if err := encodeTo(b, x.Match); err != nil {
			return err
		}
		b.WriteByte('}')
	case Time:
		b.WriteString(`{"@ts":`)
		if err := writeString(b, x.value); err != nil {
			return err
		}
		b.WriteByte('}')
	case Date:
		b.WriteString(`{"@date":`)
		if err := writeString(b, x.value); err != nil {
			return err
		}
		b.WriteByte('}')
	case Obj:
		b.WriteString(`{"@obj":`)
		if err := encodeMap(b, x); err != nil {
			return err
		}
		b.WriteByte('}')
	case map[string]any:
		// A plain single-key mapping that looks like a tag form would not
		// survive a round trip; escape it under @obj.
		if len(x) == 1 && reservedKeys[soleKey(x)] {
			b.WriteString(`{"@obj":`)
			if err := encodeMap(b, x); err != nil {
				return err
			}
			b.WriteByte('}')
			break
		}
		return encodeMap(b, x)
	case Arr:
		return encodeSlice(b, x)
	case []any:
		return encodeSlice(b, x)
	case []string:
		b.WriteByte('[')
		for i, s := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeString(b, s); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case string:
		return writeString(b, x)
	case bool:
		b.WriteString(strconv.FormatBool(x))
	case int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int8:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		b.WriteString(strconv.FormatInt(x, 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(x, 10))
	case float32:
		return writeFloat(b, float64(x), v)
	case float64:
		return writeFloat(b, x, v)
	case json.Number:
		b.WriteString(x.String())
	case time.Time:
		return &EncodingError{Value: x, Message: "bare time.Time is ambiguous; wrap it in rift.TimeFromTime or rift.DateFromTime"}
	default:
		return &EncodingError{Value: v, Message: fmt.Sprintf("value of type %T has no wire representation", v)}
	}
	return nil
}

func encodeMap(b *bytes.Buffer, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeKey(b, k); err != nil {
			return err
		}
		if err := encodeTo(b, m[k]); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

func encodeSlice(b *bytes.Buffer, s []any) error {
	b.WriteByte('[')
	for i, elem := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := encodeTo(b, elem); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func writeKey(b *bytes.Buffer, k string) error {
	if err := writeString(b, k); err != nil {
		return err
	}
	b.WriteByte(':')
	return nil
}

func writeString(b *bytes.Buffer, s string) error {
	quoted, err := json.Marshal(s)
	if err != nil {
		return &EncodingError{Value: s, Message: err.Error()}
	}
	b.Write(quoted)
	return nil
}

func writeFloat(b *bytes.Buffer, f float64, orig any) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &EncodingError{Value: orig, Message: fmt.Sprintf("%v has no JSON representation", f)}
	}
	out, err := json.Marshal(f)
	if err != nil {
		return &EncodingError{Value: orig, Message: err.Error()}
	}
	b.Write(out)
	return nil
}

func soleKey(m map[string]any) string {
	for k := range m {
		return k
	}
	return ""
}

// Decode parses tagged wire JSON back into typed values. Single-key objects
// dispatch on the tag table; everything else decodes as plain mappings,
// arrays, and scalars. Numbers normalize to int64 when integral, else
// float64. Decode is the left inverse of Encode.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodingError{Message: "bad JSON: " + err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		msg := "trailing data after JSON value"
		if err != nil {
			msg += ": " + err.Error()
		}
		return nil, &DecodingError{Message: msg}
	}
	return reify(raw)
}

type tagDecoder func(inner any) (any, error)

// tagTable is assigned in init: declaring it with a composite literal would
// form an initialization cycle through decodeSetTag and reify.
var tagTable map[string]tagDecoder

func init() {
	tagTable = map[string]tagDecoder{
		"@ref":  decodeRefTag,
		"@set":  decodeSetTag,
		"@ts":   decodeTimeTag,
		"@date": decodeDateTag,
		"@obj":  decodeObjTag,
	}
}

func reify(v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		// Tag forms are always single-key; anything else is a plain mapping.
		if len(x) == 1 {
			for k, inner := range x {
				if decode, ok := tagTable[k]; ok {
					return decode(inner)
				}
			}
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			r, err := reify(val)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			r, err := reify(elem)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, &DecodingError{Value: x, Message: "unrepresentable number: " + x.String()}
		}
		return f, nil
	default:
		return v, nil
	}
}

func decodeRefTag(inner any) (any, error) {
	path, ok := inner.(string)
	if !ok {
		return nil, &DecodingError{Tag: "@ref", Value: inner, Message: "payload should be a path string"}
	}
	return Ref{value: path}, nil
}

func decodeSetTag(inner any) (any, error) {
	match, err := reify(inner)
	if err != nil {
		return nil, err
	}
	return SetRef{Match: match}, nil
}

func decodeTimeTag(inner any) (any, error) {
	s, ok := inner.(string)
	if !ok {
		return nil, &DecodingError{Tag: "@ts", Value: inner, Message: "payload should be a string"}
	}
	t, err := TimeFromString(s)
	if err != nil {
		return nil, &DecodingError{Tag: "@ts", Value: inner, Message: err.Error()}
	}
	return t, nil
}

func decodeDateTag(inner any) (any, error) {
	s, ok := inner.(string)
	if !ok {
		return nil, &DecodingError{Tag: "@date", Value: inner, Message: "payload should be a string"}
	}
	d, err := DateFromString(s)
	if err != nil {
		return nil, &DecodingError{Tag: "@date", Value: inner, Message: err.Error()}
	}
	return d, nil
}

// decodeObjTag unwraps exactly one level: the inner mapping is taken as
// literal data, so its own single keys never dispatch as tags.
func decodeObjTag(inner any) (any, error) {
	m, ok := inner.(map[string]any)
	if !ok {
		return nil, &DecodingError{Tag: "@obj", Value: inner, Message: "payload should be a mapping"}
	}
	out := make(Obj, len(m))
	for k, val := range m {
		r, err := reify(val)
		if err != nil {
			return nil, err
		}
		out[k] = r
	}
	return out, nil
}
