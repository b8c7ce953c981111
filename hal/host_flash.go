//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	// DefaultFlashSizeBytes is the size of a newly created flash image.
	DefaultFlashSizeBytes = 64 * 1024

	hostFlashEraseBlockBytes = 4096
)

// FlashFile is a file-backed NOR flash image: writes may only clear bits and
// an erase sets a whole block back to 0xFF.
type FlashFile struct {
	mu    sync.Mutex
	f     *os.File
	size  uint32
	erase [hostFlashEraseBlockBytes]byte
}

// OpenFlashFile opens or creates a flash image at path.
//
// An existing file keeps its size. A new file is created with size bytes (or
// DefaultFlashSizeBytes when size is 0), fully erased.
func OpenFlashFile(path string, size uint32) (*FlashFile, error) {
	if size == 0 {
		size = DefaultFlashSizeBytes
	}
	if size%hostFlashEraseBlockBytes != 0 {
		return nil, fmt.Errorf("open flash %s: size %d not a multiple of %d: %w", path, size, hostFlashEraseBlockBytes, os.ErrInvalid)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash %s: %w", path, err)
	}
	ff := &FlashFile{f: f}
	for i := range ff.erase {
		ff.erase[i] = 0xFF
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat flash %s: %w", path, err)
	}
	switch {
	case st.Size() > int64(^uint32(0)):
		_ = f.Close()
		return nil, fmt.Errorf("open flash %s: image too large: %w", path, os.ErrInvalid)
	case st.Size() > 0:
		ff.size = uint32(st.Size())
	default:
		ff.size = size
		if err := ff.Erase(0, size); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("format flash %s: %w", path, err)
		}
	}
	return ff, nil
}

func (f *FlashFile) SizeBytes() uint32 { return f.size }
func (f *FlashFile) EraseBlockBytes() uint32 {
	return hostFlashEraseBlockBytes
}

func (f *FlashFile) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}
	return f.f.ReadAt(p, int64(off))
}

func (f *FlashFile) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}

	buf := make([]byte, len(p))
	if _, err := f.f.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if buf[i]&p[i] != p[i] {
			return 0, ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *FlashFile) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return ErrNotImplemented
	}
	if size == 0 {
		return nil
	}
	if off%hostFlashEraseBlockBytes != 0 || size%hostFlashEraseBlockBytes != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	if off >= f.size || off+size > f.size {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}

	for size > 0 {
		if _, err := f.f.WriteAt(f.erase[:], int64(off)); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
		off += hostFlashEraseBlockBytes
		size -= hostFlashEraseBlockBytes
	}
	return nil
}

// Close syncs and closes the image.
func (f *FlashFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return nil
	}
	err := f.f.Sync()
	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	f.f = nil
	return err
}
