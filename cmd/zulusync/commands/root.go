//go:build !tinygo

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	now     = time.Now
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zulusync",
		Short:         "Send UTC time sync messages to a zuluface watch",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
				Level(level).With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log NATS activity")
	root.AddCommand(sendCmd(), encodeCmd(), decodeCmd())
	return root
}

// resolveUnix picks the timestamp to send: --unix wins, then --at, then now.
func resolveUnix(unix int64, unixSet bool, at string) (int64, error) {
	switch {
	case unixSet:
		return unix, nil
	case at != "":
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return 0, fmt.Errorf("parse --at: %w", err)
		}
		return t.Unix(), nil
	default:
		return now().Unix(), nil
	}
}
