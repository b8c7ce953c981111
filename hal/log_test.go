package hal

import (
	"fmt"
	"testing"
)

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestLogWriterSplitsLines(t *testing.T) {
	l := &lineLog{}
	w := LogWriter(l)
	n, err := w.Write([]byte("one\r\ntwo\nthree"))
	if err != nil || n != 14 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	want := []string{"one", "two", "three"}
	if fmt.Sprint(l.lines) != fmt.Sprint(want) {
		t.Fatalf("lines = %q, want %q", l.lines, want)
	}
}

func TestLogWriterNilLogger(t *testing.T) {
	if n, err := LogWriter(nil).Write([]byte("x\n")); n != 2 || err != nil {
		t.Fatalf("Write = %d, %v", n, err)
	}
}
