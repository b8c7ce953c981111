package app

// ramFlash is a NOR-style flash in memory.
type ramFlash struct {
	buf []byte
}

func newRAMFlash(size int) *ramFlash {
	f := &ramFlash{buf: make([]byte, size)}
	for i := range f.buf {
		f.buf[i] = 0xFF
	}
	return f
}

func (f *ramFlash) SizeBytes() uint32       { return uint32(len(f.buf)) }
func (f *ramFlash) EraseBlockBytes() uint32 { return 4096 }

func (f *ramFlash) ReadAt(p []byte, off uint32) (int, error) {
	return copy(p, f.buf[off:]), nil
}

func (f *ramFlash) WriteAt(p []byte, off uint32) (int, error) {
	for i, b := range p {
		f.buf[int(off)+i] &= b
	}
	return len(p), nil
}

func (f *ramFlash) Erase(off, size uint32) error {
	for i := off; i < off+size; i++ {
		f.buf[i] = 0xFF
	}
	return nil
}
