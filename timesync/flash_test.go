package timesync

// testFlash is a NOR-like flash: writes only clear bits, erase sets 0xFF.
type testFlash struct {
	buf []byte
}

func newTestFlash(size int) *testFlash {
	f := &testFlash{buf: make([]byte, size)}
	for i := range f.buf {
		f.buf[i] = 0xFF
	}
	return f
}

func (f *testFlash) SizeBytes() uint32       { return uint32(len(f.buf)) }
func (f *testFlash) EraseBlockBytes() uint32 { return 4096 }

func (f *testFlash) ReadAt(p []byte, off uint32) (int, error) {
	return copy(p, f.buf[off:]), nil
}

func (f *testFlash) WriteAt(p []byte, off uint32) (int, error) {
	for i, b := range p {
		f.buf[int(off)+i] &= b
	}
	return len(p), nil
}

func (f *testFlash) Erase(off, size uint32) error {
	for i := off; i < off+size; i++ {
		f.buf[i] = 0xFF
	}
	return nil
}
