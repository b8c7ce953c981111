package kernel

import "context"

// DefaultMailboxSlots is the queue depth used by the watch face event loop.
const DefaultMailboxSlots = 32

// Mailbox is a bounded multi-producer, single-consumer queue.
//
// Producers (HAL pumps, transport callbacks) may run on any goroutine.
// Exactly one goroutine consumes, which is what keeps event handling
// non-reentrant.
type Mailbox[T any] struct {
	_  [0]func() // prevent accidental copying.
	ch chan T
}

// NewMailbox returns a mailbox holding at most slots messages.
func NewMailbox[T any](slots int) *Mailbox[T] {
	if slots <= 0 {
		slots = DefaultMailboxSlots
	}
	return &Mailbox[T]{ch: make(chan T, slots)}
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox[T]) TrySend(msg T) bool {
	select {
	case mb.ch <- msg:
		return true
	default:
		return false
	}
}

// Send enqueues a message, blocking until there is room or ctx is done.
func (mb *Mailbox[T]) Send(ctx context.Context, msg T) error {
	select {
	case mb.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryRecv attempts to dequeue one message, returning false if empty.
func (mb *Mailbox[T]) TryRecv() (T, bool) {
	select {
	case msg := <-mb.ch:
		return msg, true
	default:
		var zero T
		return zero, false
	}
}

// Recv blocks until one message is available or ctx is done.
func (mb *Mailbox[T]) Recv(ctx context.Context) (T, error) {
	select {
	case msg := <-mb.ch:
		return msg, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Len reports the number of queued messages.
func (mb *Mailbox[T]) Len() int { return len(mb.ch) }

// Cap reports the mailbox capacity.
func (mb *Mailbox[T]) Cap() int { return cap(mb.ch) }
