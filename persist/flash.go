package persist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"sort"
)

// Flash is raw NOR-style storage: bits only go from 1 to 0 until erased.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

const (
	recordBytes = 16
	recordMagic = 0x5A50

	flagTombstone = 1 << 0
)

// record layout (little-endian):
//   - u16: magic
//   - u16: flags
//   - u32: key
//   - i32: value
//   - u32: crc32 (IEEE) of the preceding 12 bytes
type record struct {
	flags uint16
	key   uint32
	value int32
}

func (r record) encode(dst []byte) {
	binary.LittleEndian.PutUint16(dst[0:2], recordMagic)
	binary.LittleEndian.PutUint16(dst[2:4], r.flags)
	binary.LittleEndian.PutUint32(dst[4:8], r.key)
	binary.LittleEndian.PutUint32(dst[8:12], uint32(r.value))
	binary.LittleEndian.PutUint32(dst[12:16], crc32.ChecksumIEEE(dst[0:12]))
}

// decodeRecord returns (record, ok, end). end is true for erased flash.
func decodeRecord(src []byte) (r record, ok bool, end bool) {
	erased := true
	for _, b := range src[:recordBytes] {
		if b != 0xFF {
			erased = false
			break
		}
	}
	if erased {
		return record{}, false, true
	}
	if binary.LittleEndian.Uint16(src[0:2]) != recordMagic {
		return record{}, false, false
	}
	if crc32.ChecksumIEEE(src[0:12]) != binary.LittleEndian.Uint32(src[12:16]) {
		return record{}, false, false
	}
	return record{
		flags: binary.LittleEndian.Uint16(src[2:4]),
		key:   binary.LittleEndian.Uint32(src[4:8]),
		value: int32(binary.LittleEndian.Uint32(src[8:12])),
	}, true, false
}

// FlashStore is an append-only record log in one erase block.
//
// The newest record per key wins. When the block fills up it is erased and
// the live set rewritten.
type FlashStore struct {
	flash Flash
	base  uint32
	size  uint32

	next uint32 // next free offset relative to base
	live map[uint32]int32
	buf  [recordBytes]byte
}

// OpenFlash scans the erase block at base and returns a store over it.
func OpenFlash(f Flash, base uint32) (*FlashStore, error) {
	if f == nil {
		return nil, fmt.Errorf("open flash store: nil flash: %w", ErrInvalid)
	}
	size := f.EraseBlockBytes()
	if size < recordBytes || size%recordBytes != 0 {
		return nil, fmt.Errorf("open flash store: erase block %d: %w", size, ErrInvalid)
	}
	if base%size != 0 || base+size > f.SizeBytes() || base+size < base {
		return nil, fmt.Errorf("open flash store: base %d: %w", base, ErrInvalid)
	}

	s := &FlashStore{flash: f, base: base, size: size, live: make(map[uint32]int32)}
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s, nil
}

// LastBlock returns the base offset of the final erase block of f.
func LastBlock(f Flash) uint32 {
	bs := f.EraseBlockBytes()
	if bs == 0 || f.SizeBytes() < bs {
		return 0
	}
	return (f.SizeBytes()/bs - 1) * bs
}

func (s *FlashStore) scan() error {
	blk := make([]byte, s.size)
	n, err := s.flash.ReadAt(blk, s.base)
	if err != nil && n < len(blk) {
		return fmt.Errorf("scan flash store: %w", err)
	}

	s.next = s.size
	for off := uint32(0); off < s.size; off += recordBytes {
		r, ok, end := decodeRecord(blk[off:])
		if end {
			s.next = off
			break
		}
		if !ok {
			// Torn or foreign record; skip it and keep reading.
			continue
		}
		if r.flags&flagTombstone != 0 {
			delete(s.live, r.key)
			continue
		}
		s.live[r.key] = r.value
	}
	return nil
}

func (s *FlashStore) Exists(key uint32) bool {
	_, ok := s.live[key]
	return ok
}

func (s *FlashStore) ReadInt(key uint32) (int32, bool) {
	v, ok := s.live[key]
	return v, ok
}

// WriteInt persists v under key. Rewriting the current value is a no-op.
func (s *FlashStore) WriteInt(key uint32, v int32) error {
	if cur, ok := s.live[key]; ok && cur == v {
		return nil
	}
	if err := s.append(record{key: key, value: v}); err != nil {
		return fmt.Errorf("persist write key %d: %w", key, err)
	}
	s.live[key] = v
	return nil
}

func (s *FlashStore) Delete(key uint32) error {
	if _, ok := s.live[key]; !ok {
		return nil
	}
	if err := s.append(record{flags: flagTombstone, key: key}); err != nil {
		return fmt.Errorf("persist delete key %d: %w", key, err)
	}
	delete(s.live, key)
	return nil
}

// Len reports the number of live keys.
func (s *FlashStore) Len() int { return len(s.live) }

// Keys returns the live keys in ascending order.
func (s *FlashStore) Keys() []uint32 {
	keys := make([]uint32, 0, len(s.live))
	for k := range s.live {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (s *FlashStore) append(r record) error {
	if s.next+recordBytes > s.size {
		if err := s.compact(r); err != nil {
			return err
		}
		return nil
	}
	return s.writeAt(s.next, r)
}

func (s *FlashStore) writeAt(off uint32, r record) error {
	r.encode(s.buf[:])
	if _, err := s.flash.WriteAt(s.buf[:], s.base+off); err != nil {
		return err
	}
	s.next = off + recordBytes
	return nil
}

// compact erases the block and rewrites the live set with pending applied.
func (s *FlashStore) compact(pending record) error {
	set := make(map[uint32]int32, len(s.live)+1)
	for k, v := range s.live {
		set[k] = v
	}
	if pending.flags&flagTombstone != 0 {
		delete(set, pending.key)
	} else {
		set[pending.key] = pending.value
	}
	if uint32(len(set))*recordBytes > s.size {
		return ErrNoSpace
	}

	if err := s.flash.Erase(s.base, s.size); err != nil {
		return fmt.Errorf("compact: %w", err)
	}
	s.next = 0

	keys := make([]uint32, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var errs []error
	for _, k := range keys {
		if err := s.writeAt(s.next, record{key: k, value: set[k]}); err != nil {
			errs = append(errs, fmt.Errorf("compact key %d: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
