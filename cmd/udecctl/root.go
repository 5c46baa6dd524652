// Package main is the udecctl CLI: a thin driver over the verifier
// engine, reading automata from a directory of header/body file pairs
// and reporting the sweep's verdicts and telemetry.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Summer2023SHY/udec/internal/obslog"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "udecctl",
		Short:         "Incremental verification of decentralized discrete-event systems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())

	return root
}

func main() {
	log, err := obslog.New()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := newRootCmd().Execute(); err != nil {
		log.Errorw("udecctl failed", "error", err)
		os.Exit(1)
	}
}
