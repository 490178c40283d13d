package net

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxStringLen is the largest byte length a u16 length prefix can describe.
const MaxStringLen = 1<<16 - 1

func ReadI8(r io.Reader) (int8, error) {
	b, err := ReadU8(r)
	return int8(b), err
}

func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, IOError(err)
	}
	return buf[0], nil
}

func ReadI16(r io.Reader) (int16, error) {
	var val int16
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, IOError(err)
	}
	return val, nil
}

func ReadU16(r io.Reader) (uint16, error) {
	var val uint16
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, IOError(err)
	}
	return val, nil
}

func ReadI32(r io.Reader) (int32, error) {
	var val int32
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, IOError(err)
	}
	return val, nil
}

func ReadI64(r io.Reader) (int64, error) {
	var val int64
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, IOError(err)
	}
	return val, nil
}

func ReadF32(r io.Reader) (float32, error) {
	var val float32
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, IOError(err)
	}
	return val, nil
}

func ReadF64(r io.Reader) (float64, error) {
	var val float64
	if err := binary.Read(r, binary.BigEndian, &val); err != nil {
		return 0, IOError(err)
	}
	return val, nil
}

func ReadBool(r io.Reader) (bool, error) {
	b, err := ReadU8(r)
	return b != 0, err
}

// ReadString reads a u16 big-endian byte length followed by that many bytes
// of UTF-8 text.
func ReadString(r io.Reader) (string, error) {
	length, err := ReadU16(r)
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read string data: %w", IOError(err))
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidText
	}
	return string(buf), nil
}

// WriteString writes s with a u16 length prefix. Strings longer than
// MaxStringLen are rejected before anything reaches w.
func WriteString(w io.Writer, s string) (int, error) {
	if len(s) > MaxStringLen {
		return 0, ErrStringTooLong
	}
	buf := make([]byte, 2+len(s))
	binary.BigEndian.PutUint16(buf, uint16(len(s)))
	copy(buf[2:], s)

	n, err := w.Write(buf)
	if err != nil {
		return n, IOError(err)
	}
	return n, nil
}

// StringSize returns the encoded size of s, prefix included.
func StringSize(s string) int {
	return 2 + len(s)
}
