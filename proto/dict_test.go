package proto

import (
	"errors"
	"testing"
)

func TestSyncRoundTrip(t *testing.T) {
	tests := []int64{0, 1, 1_700_000_000, -10800, 1 << 40}
	for _, want := range tests {
		got, err := DecodeSync(EncodeSync(want))
		if err != nil {
			t.Fatalf("DecodeSync(EncodeSync(%d)) err = %v", want, err)
		}
		if got != want {
			t.Fatalf("DecodeSync(EncodeSync(%d)) = %d", want, got)
		}
	}
}

func TestEncodeSyncLayout(t *testing.T) {
	got := EncodeSync(0x01020304)
	want := []byte{
		1,          // count
		0, 0, 0, 0, // key 0
		byte(TypeInt),
		4, 0, // length
		0x04, 0x03, 0x02, 0x01,
	}
	if string(got) != string(want) {
		t.Fatalf("EncodeSync = % x, want % x", got, want)
	}
}

func TestDecodeSyncIgnoresOtherKeys(t *testing.T) {
	payload, err := EncodeDict(Dict{
		{Key: 7, Type: TypeCString, Value: []byte("hello\x00")},
		IntTuple(SyncKey, 1234),
	})
	if err != nil {
		t.Fatalf("EncodeDict: %v", err)
	}
	got, err := DecodeSync(payload)
	if err != nil || got != 1234 {
		t.Fatalf("DecodeSync = %d, %v; want 1234, nil", got, err)
	}
}

func TestDecodeSyncUintWidths(t *testing.T) {
	tests := []struct {
		name  string
		value []byte
		want  int64
	}{
		{"u8", []byte{200}, 200},
		{"u16", []byte{0x34, 0x12}, 0x1234},
		{"u32", []byte{0xff, 0xff, 0xff, 0xff}, 0xffffffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := EncodeDict(Dict{{Key: SyncKey, Type: TypeUint, Value: tt.value}})
			if err != nil {
				t.Fatalf("EncodeDict: %v", err)
			}
			got, err := DecodeSync(payload)
			if err != nil || got != tt.want {
				t.Fatalf("DecodeSync = %d, %v; want %d, nil", got, err, tt.want)
			}
		})
	}
}

func TestDecodeSyncErrors(t *testing.T) {
	missing, _ := EncodeDict(Dict{IntTuple(3, 99)})
	str, _ := EncodeDict(Dict{{Key: SyncKey, Type: TypeCString, Value: []byte("1700000000\x00")}})
	odd, _ := EncodeDict(Dict{{Key: SyncKey, Type: TypeInt, Value: []byte{1, 2, 3}}})
	short := EncodeSync(42)
	short = short[:len(short)-1]

	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"empty", nil, ErrTruncated},
		{"no tuples", []byte{0}, ErrMissingField},
		{"missing key", missing, ErrMissingField},
		{"cstring", str, ErrFieldType},
		{"odd width", odd, ErrFieldType},
		{"short value", short, ErrTruncated},
		{"short header", []byte{1, 0, 0}, ErrTruncated},
		{"oversized", make([]byte, MaxDictBytes+1), ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSync(tt.payload)
			if !errors.Is(err, tt.want) {
				t.Fatalf("DecodeSync err = %v, want %v", err, tt.want)
			}
		})
	}
}
