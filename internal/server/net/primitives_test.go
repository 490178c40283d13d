package net

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// countingWriter records how many Write calls reached it.
type countingWriter struct {
	calls int
	buf   bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	return w.buf.Write(p)
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"ascii", "Alice"},
		{"multibyte", "I♥Special﹏Symbols"},
		{"max_length", strings.Repeat("a", MaxStringLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := WriteString(&buf, tt.value)
			if err != nil {
				t.Fatalf("WriteString: %v", err)
			}
			if n != StringSize(tt.value) {
				t.Errorf("WriteString wrote %d bytes, want %d", n, StringSize(tt.value))
			}

			got, err := ReadString(&buf)
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if got != tt.value {
				t.Errorf("ReadString = %q, want %q", got, tt.value)
			}
			if buf.Len() != 0 {
				t.Errorf("%d bytes left unread", buf.Len())
			}
		})
	}
}

func TestStringWireLayout(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteString(&buf, "hi"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	want := []byte{0x00, 0x02, 'h', 'i'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded = % X, want % X", buf.Bytes(), want)
	}
}

func TestWriteStringTooLong(t *testing.T) {
	w := &countingWriter{}
	_, err := WriteString(w, strings.Repeat("x", MaxStringLen+1))
	if !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("WriteString error = %v, want ErrStringTooLong", err)
	}
	if Classify(err) != KindEncoding {
		t.Errorf("Classify = %s, want encoding", Classify(err))
	}
	if w.calls != 0 {
		t.Errorf("writer received %d calls, want none", w.calls)
	}
}

func TestReadStringInvalidText(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x02, 0xC3, 0x28})
	_, err := ReadString(r)
	if !errors.Is(err, ErrInvalidText) {
		t.Fatalf("ReadString error = %v, want ErrInvalidText", err)
	}
	if Classify(err) != KindMalformed {
		t.Errorf("Classify = %s, want malformed", Classify(err))
	}
}

func TestReadStringTruncated(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x05, 'a', 'b'})
	_, err := ReadString(r)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("ReadString error = %v, want ErrIO", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadString error = %v, want wrapped io.ErrUnexpectedEOF", err)
	}
}

func TestFixedWidthBigEndian(t *testing.T) {
	data := []byte{
		0xFF,                   // i8 -1
		0x01, 0x02,             // i16 258
		0x00, 0x00, 0x01, 0x00, // i32 256
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2A, // i64 42
		0x3F, 0x80, 0x00, 0x00, // f32 1.0
		0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // f64 2.0
		0x01, // bool true
	}
	r := bytes.NewReader(data)

	if v, err := ReadI8(r); err != nil || v != -1 {
		t.Errorf("ReadI8 = %d, %v; want -1", v, err)
	}
	if v, err := ReadI16(r); err != nil || v != 258 {
		t.Errorf("ReadI16 = %d, %v; want 258", v, err)
	}
	if v, err := ReadI32(r); err != nil || v != 256 {
		t.Errorf("ReadI32 = %d, %v; want 256", v, err)
	}
	if v, err := ReadI64(r); err != nil || v != 42 {
		t.Errorf("ReadI64 = %d, %v; want 42", v, err)
	}
	if v, err := ReadF32(r); err != nil || v != 1.0 {
		t.Errorf("ReadF32 = %v, %v; want 1.0", v, err)
	}
	if v, err := ReadF64(r); err != nil || v != 2.0 {
		t.Errorf("ReadF64 = %v, %v; want 2.0", v, err)
	}
	if v, err := ReadBool(r); err != nil || !v {
		t.Errorf("ReadBool = %v, %v; want true", v, err)
	}

	if _, err := ReadU8(r); !errors.Is(err, io.EOF) {
		t.Errorf("ReadU8 at end = %v, want io.EOF", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"eof", io.EOF, KindIO},
		{"wrapped_io", IOError(errors.New("reset by peer")), KindIO},
		{"malformed", Malformed("bad opcode 0x%02X", 0x99), KindMalformed},
		{"invalid_text", ErrInvalidText, KindMalformed},
		{"too_long", ErrStringTooLong, KindEncoding},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}
