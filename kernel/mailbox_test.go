package kernel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

const testSlots = 8

func TestMailboxTryRecvEmpty(t *testing.T) {
	mb := NewMailbox[int](testSlots)

	_, ok := mb.TryRecv()
	if ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
}

func TestMailboxTrySendFull(t *testing.T) {
	mb := NewMailbox[int](testSlots)

	for i := 0; i < testSlots; i++ {
		if ok := mb.TrySend(i); !ok {
			t.Fatalf("TrySend() ok = false at slot %d, want true", i)
		}
	}
	if ok := mb.TrySend(-1); ok {
		t.Fatalf("TrySend() ok = true when full, want false")
	}
	if mb.Len() != testSlots {
		t.Fatalf("Len() = %d, want %d", mb.Len(), testSlots)
	}

	for i := 0; i < testSlots; i++ {
		got, ok := mb.TryRecv()
		if !ok {
			t.Fatalf("TryRecv() ok = false at slot %d, want true", i)
		}
		if got != i {
			t.Fatalf("TryRecv() = %d, want %d (FIFO order)", got, i)
		}
	}
}

func TestMailboxDefaultSlots(t *testing.T) {
	mb := NewMailbox[string](0)
	if mb.Cap() != DefaultMailboxSlots {
		t.Fatalf("Cap() = %d, want %d", mb.Cap(), DefaultMailboxSlots)
	}
}

func TestMailboxRecvCanceled(t *testing.T) {
	mb := NewMailbox[int](testSlots)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mb.Recv(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Recv() err = %v, want context.Canceled", err)
	}
}

func TestMailboxSendCanceledWhenFull(t *testing.T) {
	mb := NewMailbox[int](1)
	if !mb.TrySend(1) {
		t.Fatalf("TrySend() ok = false, want true")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := mb.Send(ctx, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("Send() err = %v, want context.Canceled", err)
	}
}

func TestMailboxConcurrentProducers(t *testing.T) {
	oldProcs := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(oldProcs)

	const (
		producers = 4
		perProd   = 10_000
		total     = producers * perProd
	)

	mb := NewMailbox[uint32](testSlots)
	ctx := context.Background()

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for producerID := 0; producerID < producers; producerID++ {
		go func(producerID int) {
			defer wg.Done()
			<-start
			for i := 0; i < perProd; i++ {
				_ = mb.Send(ctx, uint32(producerID*perProd+i))
			}
		}(producerID)
	}
	close(start)

	seen := make([]bool, total)
	for i := 0; i < total; i++ {
		id, err := mb.Recv(ctx)
		if err != nil {
			t.Fatalf("Recv() err = %v", err)
		}
		if int(id) >= total {
			t.Fatalf("Recv() id = %d, want < %d", id, total)
		}
		if seen[id] {
			t.Fatalf("Recv() duplicate id %d", id)
		}
		seen[id] = true
	}

	wg.Wait()
}
