//go:build !tinygo

package commands

import (
	"encoding/hex"
	"fmt"
	"time"

	"zuluface/proto"

	"github.com/spf13/cobra"
)

func encodeCmd() *cobra.Command {
	var (
		unix int64
		at   string
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the hex sync message for a timestamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := resolveUnix(unix, cmd.Flags().Changed("unix"), at)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(proto.EncodeSync(ts)))
			return nil
		},
	}
	cmd.Flags().Int64Var(&unix, "unix", 0, "UTC Unix seconds (default now)")
	cmd.Flags().StringVar(&at, "at", "", "UTC time, RFC 3339")
	cmd.MarkFlagsMutuallyExclusive("unix", "at")
	return cmd
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Print the tuples of a hex message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}
			d, err := proto.DecodeDict(raw)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range d {
				if v, err := d.Int(t.Key); err == nil {
					fmt.Fprintf(out, "%d %s %d\n", t.Key, t.Type, v)
					continue
				}
				fmt.Fprintf(out, "%d %s %x\n", t.Key, t.Type, t.Value)
			}
			if unix, err := proto.DecodeSync(raw); err == nil {
				fmt.Fprintf(out, "sync %s\n", time.Unix(unix, 0).UTC().Format(time.RFC3339))
			}
			return nil
		},
	}
}
