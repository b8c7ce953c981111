package hal

import (
	"bytes"
	"io"
)

type lineWriter struct {
	l Logger
}

// LogWriter adapts a line Logger to io.Writer.
//
// Each Write is split on newlines; a trailing partial line is written as is.
func LogWriter(l Logger) io.Writer {
	return lineWriter{l: l}
}

func (w lineWriter) Write(p []byte) (int, error) {
	if w.l == nil {
		return len(p), nil
	}
	rest := p
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}
		w.l.WriteLineBytes(bytes.TrimSuffix(line, []byte{'\r'}))
	}
	return len(p), nil
}
