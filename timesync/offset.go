package timesync

import (
	"errors"
	"fmt"
	"math"
	"time"

	"zuluface/persist"

	"github.com/rs/zerolog/log"
)

// OffsetKey is the persist key holding the clock offset.
const OffsetKey uint32 = 1

// ErrOffsetRange indicates an offset that does not fit the persisted slot.
var ErrOffsetRange = errors.New("timesync: offset out of persistable range")

// Offset is the signed number of seconds added to local wall time to get UTC.
type Offset int64

// Duration returns the offset as a time.Duration.
func (o Offset) Duration() time.Duration { return time.Duration(o) * time.Second }

func (o Offset) String() string { return fmt.Sprintf("%+ds", int64(o)) }

// OffsetStore persists the clock offset under a single key.
type OffsetStore struct {
	store persist.Store
	key   uint32
}

// NewOffsetStore returns an OffsetStore over store using key.
func NewOffsetStore(store persist.Store, key uint32) *OffsetStore {
	return &OffsetStore{store: store, key: key}
}

// Load returns the persisted offset, or 0 when none exists.
func (s *OffsetStore) Load() Offset {
	if s == nil || s.store == nil {
		return 0
	}
	v, ok := s.store.ReadInt(s.key)
	if !ok {
		log.Debug().Uint32("key", s.key).Msg("no persisted offset; using 0")
		return 0
	}
	log.Debug().Uint32("key", s.key).Int32("offset", v).Msg("loaded offset")
	return Offset(v)
}

// Save durably persists o, replacing any prior value.
func (s *OffsetStore) Save(o Offset) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("save offset: %w", persist.ErrInvalid)
	}
	if o < math.MinInt32 || o > math.MaxInt32 {
		return fmt.Errorf("save offset %s: %w", o, ErrOffsetRange)
	}
	if err := s.store.WriteInt(s.key, int32(o)); err != nil {
		return fmt.Errorf("save offset: %w", err)
	}
	return nil
}
