package proto

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// TupleType is the value type of a dictionary tuple.
type TupleType uint8

const (
	TypeBytes TupleType = iota
	TypeCString
	TypeUint
	TypeInt
)

func (t TupleType) String() string {
	switch t {
	case TypeBytes:
		return "bytes"
	case TypeCString:
		return "cstring"
	case TypeUint:
		return "uint"
	case TypeInt:
		return "int"
	default:
		return "unknown"
	}
}

const (
	dictHeaderBytes  = 1
	tupleHeaderBytes = 7

	// MaxDictBytes bounds inbound messages, matching the inbox size the
	// watch face opens.
	MaxDictBytes = 256
)

var (
	// ErrTruncated indicates a payload shorter than its headers declare.
	ErrTruncated = errors.New("proto: truncated dictionary")
	// ErrTooLarge indicates a payload above MaxDictBytes.
	ErrTooLarge = errors.New("proto: dictionary too large")
	// ErrMissingField indicates that a required key is absent.
	ErrMissingField = errors.New("proto: missing field")
	// ErrFieldType indicates a key whose value has the wrong type or width.
	ErrFieldType = errors.New("proto: unexpected field type")
)

// Tuple is one key/value entry of an inbound message.
type Tuple struct {
	Key   uint32
	Type  TupleType
	Value []byte
}

// Dict is a decoded message dictionary.
type Dict []Tuple

// Find returns the first tuple with the given key.
func (d Dict) Find(key uint32) (Tuple, bool) {
	for _, t := range d {
		if t.Key == key {
			return t, true
		}
	}
	return Tuple{}, false
}

// Int returns key as a signed integer.
//
// Int and uint tuples of width 1, 2, 4 or 8 are accepted.
func (d Dict) Int(key uint32) (int64, error) {
	t, ok := d.Find(key)
	if !ok {
		return 0, fmt.Errorf("key %d: %w", key, ErrMissingField)
	}
	v, ok := t.int()
	if !ok {
		return 0, fmt.Errorf("key %d is %s/%d: %w", key, t.Type, len(t.Value), ErrFieldType)
	}
	return v, nil
}

func (t Tuple) int() (int64, bool) {
	b := t.Value
	switch t.Type {
	case TypeInt:
		switch len(b) {
		case 1:
			return int64(int8(b[0])), true
		case 2:
			return int64(int16(binary.LittleEndian.Uint16(b))), true
		case 4:
			return int64(int32(binary.LittleEndian.Uint32(b))), true
		case 8:
			return int64(binary.LittleEndian.Uint64(b)), true
		}
	case TypeUint:
		switch len(b) {
		case 1:
			return int64(b[0]), true
		case 2:
			return int64(binary.LittleEndian.Uint16(b)), true
		case 4:
			return int64(binary.LittleEndian.Uint32(b)), true
		case 8:
			u := binary.LittleEndian.Uint64(b)
			if u > 1<<63-1 {
				return 0, false
			}
			return int64(u), true
		}
	}
	return 0, false
}

// DecodeDict decodes a dictionary payload.
//
// Layout (little-endian):
//   - u8: tuple count
//   - per tuple: u32 key, u8 type, u16 length, length bytes of value
//
// Value slices alias payload.
func DecodeDict(payload []byte) (Dict, error) {
	if len(payload) > MaxDictBytes {
		return nil, ErrTooLarge
	}
	if len(payload) < dictHeaderBytes {
		return nil, ErrTruncated
	}
	count := int(payload[0])
	off := dictHeaderBytes
	d := make(Dict, 0, count)
	for i := 0; i < count; i++ {
		if len(payload)-off < tupleHeaderBytes {
			return nil, fmt.Errorf("tuple %d header: %w", i, ErrTruncated)
		}
		key := binary.LittleEndian.Uint32(payload[off : off+4])
		typ := TupleType(payload[off+4])
		n := int(binary.LittleEndian.Uint16(payload[off+5 : off+7]))
		off += tupleHeaderBytes
		if len(payload)-off < n {
			return nil, fmt.Errorf("tuple %d value: %w", i, ErrTruncated)
		}
		d = append(d, Tuple{Key: key, Type: typ, Value: payload[off : off+n]})
		off += n
	}
	return d, nil
}

// EncodeDict encodes d in the DecodeDict layout.
func EncodeDict(d Dict) ([]byte, error) {
	if len(d) > 0xFF {
		return nil, fmt.Errorf("encode dict: %d tuples: %w", len(d), ErrTooLarge)
	}
	size := dictHeaderBytes
	for _, t := range d {
		if len(t.Value) > 0xFFFF {
			return nil, fmt.Errorf("encode dict: key %d: %w", t.Key, ErrTooLarge)
		}
		size += tupleHeaderBytes + len(t.Value)
	}
	if size > MaxDictBytes {
		return nil, fmt.Errorf("encode dict: %d bytes: %w", size, ErrTooLarge)
	}

	buf := make([]byte, size)
	buf[0] = byte(len(d))
	off := dictHeaderBytes
	for _, t := range d {
		binary.LittleEndian.PutUint32(buf[off:off+4], t.Key)
		buf[off+4] = byte(t.Type)
		binary.LittleEndian.PutUint16(buf[off+5:off+7], uint16(len(t.Value)))
		off += tupleHeaderBytes
		off += copy(buf[off:], t.Value)
	}
	return buf, nil
}

// IntTuple returns an int tuple, using the narrowest of int32/int64 that fits.
func IntTuple(key uint32, v int64) Tuple {
	if v >= -1<<31 && v <= 1<<31-1 {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
		return Tuple{Key: key, Type: TypeInt, Value: b}
	}
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return Tuple{Key: key, Type: TypeInt, Value: b}
}
