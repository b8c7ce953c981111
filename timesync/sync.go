// Package timesync keeps the watch's local wall clock aligned to UTC.
//
// The device has no UTC source of its own. A phone sends its Unix time now and
// then; the difference to the local wall clock is kept as an Offset and
// persisted, so UTC = local wall time + offset between syncs and across
// restarts.
package timesync

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Sync owns the current offset.
//
// It is not safe for concurrent use; the event router is its only caller.
type Sync struct {
	clock clockwork.Clock
	store *OffsetStore

	offset   Offset
	lastSync time.Time
	synced   bool
}

// New returns a Sync whose offset is loaded from store.
func New(clock clockwork.Clock, store *OffsetStore) *Sync {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Sync{clock: clock, store: store, offset: store.Load()}
}

// LocalNow returns the local wall time (see Wall).
func (s *Sync) LocalNow() time.Time { return Wall(s.clock.Now()) }

// LocalNowSeconds returns the local wall clock as seconds.
func (s *Sync) LocalNowSeconds() int64 { return s.LocalNow().Unix() }

// Offset returns the offset currently in effect.
func (s *Sync) Offset() Offset { return s.offset }

// LastSync reports the local wall time of the last sync this run.
func (s *Sync) LastSync() (time.Time, bool) { return s.lastSync, s.synced }

// OnSyncMessage replaces the offset with remoteUnix - local wall seconds and
// persists it.
//
// remoteUnix is not validated. A failed save is logged; the new offset
// applies for this run either way.
func (s *Sync) OnSyncMessage(remoteUnix int64) Offset {
	now := s.LocalNow()
	prev := s.offset
	s.offset = Offset(remoteUnix - now.Unix())
	s.lastSync = now
	s.synced = true

	log.Info().
		Int64("remote_unix", remoteUnix).
		Stringer("old_offset", prev).
		Stringer("offset", s.offset).
		Msg("clock offset updated")

	if err := s.store.Save(s.offset); err != nil {
		log.Warn().Err(err).Stringer("offset", s.offset).Msg("persist offset failed; keeping in-memory value")
	}
	return s.offset
}

// UTCNow returns local wall time plus the offset.
//
// The result is in the UTC location.
func (s *Sync) UTCNow() time.Time {
	return s.LocalNow().Add(s.offset.Duration())
}
