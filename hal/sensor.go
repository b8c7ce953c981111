package hal

import "sync"

// sensor holds the latest value of an input and queues changes.
//
// When the queue is full the oldest change is dropped; the consumer always
// ends up seeing the latest value.
type sensor[T comparable] struct {
	mu sync.Mutex
	v  T
	ch chan T
}

func newSensor[T comparable](initial T, depth int) *sensor[T] {
	if depth <= 0 {
		depth = 8
	}
	return &sensor[T]{v: initial, ch: make(chan T, depth)}
}

func (s *sensor[T]) Peek() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

func (s *sensor[T]) Events() <-chan T { return s.ch }

func (s *sensor[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v == s.v {
		return
	}
	s.v = v
	for {
		select {
		case s.ch <- v:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

type batterySensor struct{ *sensor[BatteryState] }

func newBatterySensor(initial BatteryState) batterySensor {
	if initial.Percent > 100 {
		initial.Percent = 100
	}
	return batterySensor{newSensor(initial, 8)}
}

func (b batterySensor) Set(st BatteryState) {
	if st.Percent > 100 {
		st.Percent = 100
	}
	b.sensor.Set(st)
}

type linkSensor struct{ *sensor[bool] }

func newLinkSensor(connected bool) linkSensor {
	return linkSensor{newSensor(connected, 8)}
}

// inbox is a bounded message queue.
type inbox struct {
	ch chan []byte
}

func newInbox(depth int) *inbox {
	if depth <= 0 {
		depth = 8
	}
	return &inbox{ch: make(chan []byte, depth)}
}

func (in *inbox) Messages() <-chan []byte { return in.ch }

func (in *inbox) Deliver(msg []byte) bool {
	cp := append([]byte(nil), msg...)
	select {
	case in.ch <- cp:
		return true
	default:
		return false
	}
}
