//go:build !tinygo

package commands

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"zuluface/proto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncodeUnix(t *testing.T) {
	out, err := run(t, "encode", "--unix", "1700000000")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := hex.DecodeString(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output %q: %v", out, err)
	}
	got, err := proto.DecodeSync(raw)
	if err != nil || got != 1700000000 {
		t.Fatalf("DecodeSync = %d, %v", got, err)
	}
}

func TestEncodeAt(t *testing.T) {
	out, err := run(t, "encode", "--at", "2024-03-01T12:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	want := hex.EncodeToString(proto.EncodeSync(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Unix()))
	if strings.TrimSpace(out) != want {
		t.Fatalf("encode = %q, want %q", out, want)
	}
}

func TestEncodeDefaultsToNow(t *testing.T) {
	defer func(f func() time.Time) { now = f }(now)
	now = func() time.Time { return time.Unix(42, 0) }

	out, err := run(t, "encode")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != hex.EncodeToString(proto.EncodeSync(42)) {
		t.Fatalf("encode = %q", out)
	}
}

func TestEncodeRejectsBothSources(t *testing.T) {
	if _, err := run(t, "encode", "--unix", "1", "--at", "2024-03-01T12:00:00Z"); err == nil {
		t.Fatal("expected an error for --unix with --at")
	}
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", hex.EncodeToString(proto.EncodeSync(-5)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0 int -5") || !strings.Contains(out, "sync 1969-12-31T23:59:55Z") {
		t.Fatalf("decode output:\n%s", out)
	}
}

func TestDecodeBadHex(t *testing.T) {
	if _, err := run(t, "decode", "zz"); err == nil {
		t.Fatal("expected an error for bad hex")
	}
}
