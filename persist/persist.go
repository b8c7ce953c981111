// Package persist is the watch face's key -> int32 store.
//
// Keys are small integers chosen by the caller; values are signed 32-bit.
// The store follows the watch persist API: exists, read, write, delete.
package persist

import "errors"

var (
	// ErrNoSpace indicates that the live set no longer fits the store region.
	ErrNoSpace = errors.New("persist: no space")
	// ErrCorrupt indicates an unreadable store region.
	ErrCorrupt = errors.New("persist: corrupt")
	// ErrInvalid indicates a bad region configuration.
	ErrInvalid = errors.New("persist: invalid region")
)

// Store is a generic key -> integer store.
type Store interface {
	Exists(key uint32) bool
	ReadInt(key uint32) (int32, bool)
	WriteInt(key uint32, v int32) error
	Delete(key uint32) error
}

// MemStore is a volatile Store.
//
// It backs the watch face when no flash is available and is used in tests.
type MemStore struct {
	m map[uint32]int32
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[uint32]int32)}
}

func (s *MemStore) Exists(key uint32) bool {
	_, ok := s.m[key]
	return ok
}

func (s *MemStore) ReadInt(key uint32) (int32, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) WriteInt(key uint32, v int32) error {
	s.m[key] = v
	return nil
}

func (s *MemStore) Delete(key uint32) error {
	delete(s.m, key)
	return nil
}
