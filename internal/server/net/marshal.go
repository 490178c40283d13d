package net

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
)

const tagName = "mc"

// fieldTypes maps a field tag to the Go type ReadField produces for it.
var fieldTypes = map[string]reflect.Type{
	"i8":     reflect.TypeOf(int8(0)),
	"u8":     reflect.TypeOf(uint8(0)),
	"i16":    reflect.TypeOf(int16(0)),
	"u16":    reflect.TypeOf(uint16(0)),
	"i32":    reflect.TypeOf(int32(0)),
	"i64":    reflect.TypeOf(int64(0)),
	"f32":    reflect.TypeOf(float32(0)),
	"f64":    reflect.TypeOf(float64(0)),
	"bool":   reflect.TypeOf(false),
	"string": reflect.TypeOf(""),
}

func WriteField(w io.Writer, tag string, val any) error {
	var err error
	switch tag {
	case "i8":
		err = binary.Write(w, binary.BigEndian, val.(int8))
	case "u8":
		err = binary.Write(w, binary.BigEndian, val.(uint8))
	case "i16":
		err = binary.Write(w, binary.BigEndian, val.(int16))
	case "u16":
		err = binary.Write(w, binary.BigEndian, val.(uint16))
	case "i32":
		err = binary.Write(w, binary.BigEndian, val.(int32))
	case "i64":
		err = binary.Write(w, binary.BigEndian, val.(int64))
	case "f32":
		err = binary.Write(w, binary.BigEndian, val.(float32))
	case "f64":
		err = binary.Write(w, binary.BigEndian, val.(float64))
	case "bool":
		var b uint8
		if val.(bool) {
			b = 1
		}
		err = binary.Write(w, binary.BigEndian, b)
	case "string":
		_, err = WriteString(w, val.(string))
		return err
	default:
		return fmt.Errorf("%w: unknown field tag %q", ErrEncoding, tag)
	}
	return IOError(err)
}

func ReadField(r io.Reader, tag string) (any, error) {
	switch tag {
	case "i8":
		return ReadI8(r)
	case "u8":
		return ReadU8(r)
	case "i16":
		return ReadI16(r)
	case "u16":
		return ReadU16(r)
	case "i32":
		return ReadI32(r)
	case "i64":
		return ReadI64(r)
	case "f32":
		return ReadF32(r)
	case "f64":
		return ReadF64(r)
	case "bool":
		return ReadBool(r)
	case "string":
		return ReadString(r)
	default:
		return nil, Malformed("unknown field tag %q", tag)
	}
}

// Marshal encodes the mc-tagged fields of a struct in declaration order.
// Nothing is returned unless every field encoded.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: marshal expects struct, got %s", ErrEncoding, rv.Kind())
	}

	var buf bytes.Buffer
	t := rv.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}
		base, ok := fieldTypes[tag]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field tag %q on %s", ErrEncoding, tag, field.Name)
		}

		fv := rv.Field(i)
		if !fv.Type().ConvertibleTo(base) {
			return nil, fmt.Errorf("%w: field %s of type %s cannot be written as %s", ErrEncoding, field.Name, fv.Type(), tag)
		}
		if err := WriteField(&buf, tag, fv.Convert(base).Interface()); err != nil {
			return nil, fmt.Errorf("marshal field %s: %w", field.Name, err)
		}
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes mc-tagged fields from r into the struct v points to.
// Fields are decoded into a scratch copy and committed only once all of them
// have been read, so v is never left partially filled.
func Unmarshal(r io.Reader, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: unmarshal expects non-nil pointer, got %T", ErrMalformed, v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: unmarshal expects pointer to struct, got pointer to %s", ErrMalformed, rv.Kind())
	}

	t := rv.Type()
	scratch := reflect.New(t).Elem()
	scratch.Set(rv)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}

		val, err := ReadField(r, tag)
		if err != nil {
			return fmt.Errorf("unmarshal field %s: %w", field.Name, err)
		}

		fv := scratch.Field(i)
		rval := reflect.ValueOf(val)
		if !rval.Type().ConvertibleTo(fv.Type()) {
			return fmt.Errorf("%w: field %s: cannot assign %s to %s", ErrMalformed, field.Name, rval.Type(), fv.Type())
		}
		fv.Set(rval.Convert(fv.Type()))
	}

	rv.Set(scratch)
	return nil
}
