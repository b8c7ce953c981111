//go:build tinygo && baremetal && rp2040

package hal

import (
	"fmt"
	"machine"
)

// rp2Flash is the data area of the on-chip QSPI flash that follows the
// firmware image.
type rp2Flash struct {
	size  uint32
	block uint32
}

func newRP2Flash() Flash {
	f := &rp2Flash{}
	if sz := machine.Flash.Size(); sz > 0 && sz <= int64(^uint32(0)) {
		f.size = uint32(sz)
	}
	if bs := machine.Flash.EraseBlockSize(); bs > 0 && bs <= int64(^uint32(0)) {
		f.block = uint32(bs)
	}
	return f
}

func (f *rp2Flash) SizeBytes() uint32       { return f.size }
func (f *rp2Flash) EraseBlockBytes() uint32 { return f.block }

func (f *rp2Flash) ReadAt(p []byte, off uint32) (int, error) {
	if off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, ErrNotImplemented)
	}
	n, err := machine.Flash.ReadAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash read at %d: %w", off, err)
	}
	return n, nil
}

func (f *rp2Flash) WriteAt(p []byte, off uint32) (int, error) {
	if off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, ErrNotImplemented)
	}
	n, err := machine.Flash.WriteAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash write at %d: %w", off, err)
	}
	return n, nil
}

func (f *rp2Flash) Erase(off, size uint32) error {
	switch {
	case size == 0:
		return nil
	case f.block == 0:
		return ErrNotImplemented
	case off%f.block != 0 || size%f.block != 0 || off+size > f.size:
		return fmt.Errorf("flash erase off=%d size=%d: unaligned or out of range", off, size)
	}
	return machine.Flash.EraseBlocks(int64(off/f.block), int64(size/f.block))
}
