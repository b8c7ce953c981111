// Package bridge links a host watch face to a simulated phone over NATS.
//
// The phone publishes sync messages (proto dictionaries) on a subject. Each
// message is handed to the watch and, for requests, answered "ack" or
// "nack" depending on whether the watch accepted it. The NATS connection
// state stands in for the Bluetooth link.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zuluface/proto"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const (
	Ack  = "ack"
	Nack = "nack"
)

// ErrNack is returned by PublishSync when the watch refused the message.
var ErrNack = errors.New("bridge: watch refused message")

// Config holds the NATS connection settings.
type Config struct {
	URL           string
	Subject       string
	Name          string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultConfig returns default bridge configuration.
func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		Subject:       "zuluface.sync",
		Name:          "zuluface",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// Handlers receive bridge traffic. Both run on NATS goroutines.
type Handlers struct {
	// OnMessage reports whether the message was accepted.
	OnMessage func(payload []byte) bool
	OnLink    func(connected bool)
}

// Bridge is a live subscription.
type Bridge struct {
	nc  *nats.Conn
	sub *nats.Subscription
	h   Handlers
}

// Connect dials NATS and subscribes to cfg.Subject.
func Connect(cfg Config, h Handlers) (*Bridge, error) {
	if cfg.Subject == "" {
		return nil, errors.New("bridge: empty subject")
	}
	b := &Bridge{h: h}

	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
			b.link(false)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
			b.link(true)
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	sub, err := nc.Subscribe(cfg.Subject, b.handle)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("subscribe %s: %w", cfg.Subject, err)
	}
	b.nc, b.sub = nc, sub

	log.Info().Str("url", nc.ConnectedUrl()).Str("subject", cfg.Subject).Msg("bridge connected")
	b.link(true)
	return b, nil
}

// Close drops the subscription and the connection.
func (b *Bridge) Close() {
	if b == nil || b.nc == nil {
		return
	}
	if b.sub != nil {
		_ = b.sub.Unsubscribe()
	}
	b.nc.Close()
}

func (b *Bridge) link(connected bool) {
	if b.h.OnLink != nil {
		b.h.OnLink(connected)
	}
}

// deliver hands payload to the watch and returns the reply to send.
func (b *Bridge) deliver(payload []byte) string {
	if b.h.OnMessage == nil || !b.h.OnMessage(payload) {
		log.Warn().Int("bytes", len(payload)).Msg("bridge: message refused")
		return Nack
	}
	return Ack
}

func (b *Bridge) handle(msg *nats.Msg) {
	reply := b.deliver(msg.Data)
	if msg.Reply == "" {
		return
	}
	if err := msg.Respond([]byte(reply)); err != nil {
		log.Error().Err(err).Msg("bridge: reply failed")
	}
}

// PublishSync sends a sync message carrying unix and waits for the reply.
func PublishSync(ctx context.Context, nc *nats.Conn, subject string, unix int64) error {
	resp, err := nc.RequestWithContext(ctx, subject, proto.EncodeSync(unix))
	if err != nil {
		return fmt.Errorf("publish sync: %w", err)
	}
	if string(resp.Data) != Ack {
		return fmt.Errorf("publish sync: reply %q: %w", resp.Data, ErrNack)
	}
	return nil
}
