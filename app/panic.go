package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"zuluface/render"

	"github.com/rs/zerolog/log"
)

func (s *System) panicked(v any) {
	s.halted = true
	stack := debug.Stack()
	log.Error().Interface("panic", v).Msg("watch face halted")

	lines := []string{"zuluface panic:", fmt.Sprint(v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			if l := s.h.Logger(); l != nil {
				l.WriteLineString(line)
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if s.fb == nil {
		return
	}
	defer func() {
		// The display itself may be what panicked.
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("panic screen failed")
		}
	}()
	if err := render.Text(s.fb, lines); err != nil {
		log.Error().Err(err).Msg("panic screen failed")
	}
}
