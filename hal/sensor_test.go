package hal

import "testing"

func TestSensorEmitsOnlyOnChange(t *testing.T) {
	s := newLinkSensor(true)
	s.Set(true)
	select {
	case v := <-s.Events():
		t.Fatalf("unexpected event %v", v)
	default:
	}

	s.Set(false)
	s.Set(false)
	s.Set(true)
	want := []bool{false, true}
	for i, w := range want {
		select {
		case v := <-s.Events():
			if v != w {
				t.Fatalf("event %d = %v, want %v", i, v, w)
			}
		default:
			t.Fatalf("missing event %d", i)
		}
	}
	if !s.Peek() {
		t.Fatal("Peek() = false, want true")
	}
}

func TestSensorKeepsLatestWhenFull(t *testing.T) {
	s := newBatterySensor(BatteryState{Percent: 0})
	for p := uint8(1); p <= 20; p++ {
		s.Set(BatteryState{Percent: p})
	}
	var last BatteryState
	n := 0
	for len(s.Events()) > 0 {
		last = <-s.Events()
		n++
	}
	if n != 8 {
		t.Fatalf("queued %d events, want 8", n)
	}
	if last.Percent != 20 {
		t.Fatalf("last event = %d%%, want 20%%", last.Percent)
	}
}

func TestBatterySensorClamps(t *testing.T) {
	s := newBatterySensor(BatteryState{Percent: 150})
	if s.Peek().Percent != 100 {
		t.Fatalf("Peek() = %d, want 100", s.Peek().Percent)
	}
	s.Set(BatteryState{Percent: 50})
	s.Set(BatteryState{Percent: 200, Charging: true})
	if got := s.Peek(); got != (BatteryState{Percent: 100, Charging: true}) {
		t.Fatalf("Peek() = %+v", got)
	}
}

func TestInboxCopiesAndBounds(t *testing.T) {
	in := newInbox(2)
	msg := []byte{1, 2, 3}
	if !in.Deliver(msg) || !in.Deliver(msg) {
		t.Fatal("Deliver failed with room")
	}
	if in.Deliver(msg) {
		t.Fatal("Deliver succeeded on full inbox")
	}
	msg[0] = 9
	if got := <-in.Messages(); got[0] != 1 {
		t.Fatalf("delivered message aliases caller buffer: %v", got)
	}
}

func TestPercentFromMillivolts(t *testing.T) {
	tests := []struct {
		mv   int
		want uint8
	}{
		{3000, 0},
		{3300, 0},
		{3750, 50},
		{4200, 100},
		{4500, 100},
	}
	for _, tt := range tests {
		if got := percentFromMillivolts(tt.mv); got != tt.want {
			t.Errorf("percentFromMillivolts(%d) = %d, want %d", tt.mv, got, tt.want)
		}
	}
}
