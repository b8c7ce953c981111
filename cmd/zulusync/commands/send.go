//go:build !tinygo

package commands

import (
	"context"
	"fmt"
	"time"

	"zuluface/bridge"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func sendCmd() *cobra.Command {
	var (
		url     string
		subject string
		unix    int64
		at      string
		timeout time.Duration
	)
	def := bridge.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Publish a sync message and wait for the watch to ack it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := resolveUnix(unix, cmd.Flags().Changed("unix"), at)
			if err != nil {
				return err
			}
			nc, err := nats.Connect(url, nats.Name("zulusync"))
			if err != nil {
				return fmt.Errorf("connect to NATS: %w", err)
			}
			defer nc.Close()
			log.Debug().Str("url", nc.ConnectedUrl()).Str("subject", subject).Int64("unix", ts).Msg("publishing sync")

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := bridge.PublishSync(ctx, nc, subject, ts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "synced %d (%s)\n", ts, time.Unix(ts, 0).UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", def.URL, "NATS server URL")
	cmd.Flags().StringVar(&subject, "subject", def.Subject, "sync subject")
	cmd.Flags().Int64Var(&unix, "unix", 0, "UTC Unix seconds to send (default now)")
	cmd.Flags().StringVar(&at, "at", "", "UTC time to send, RFC 3339")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Second, "how long to wait for the ack")
	cmd.MarkFlagsMutuallyExclusive("unix", "at")
	return cmd
}
