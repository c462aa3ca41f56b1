// Package main is the entry point for the call-center service.
package main

import (
	"fmt"
	"os"

	"callcenter-service/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Every subcommand reads the same
// configuration: callcenter.yaml from --config-dir (or the default search
// paths) overlaid with CALLCENTER_* environment variables.
func newRootCmd() *cobra.Command {
	var configDirs []string

	rootCmd := &cobra.Command{
		Use:           "callcenter-service",
		Short:         "Call-center REST service for agents, customers, calls and tickets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringSliceVar(&configDirs, "config-dir", nil,
		"directories searched for callcenter.yaml (default: ., configs, ../configs, ../../configs)")

	load := func() (*config.Config, error) {
		if len(configDirs) == 0 {
			return config.LoadConfig()
		}
		return config.LoadConfigFrom(configDirs...)
	}

	rootCmd.AddCommand(serveCmd(load))
	rootCmd.AddCommand(migrateCmd(load))
	rootCmd.AddCommand(seedCmd(load))

	return rootCmd
}

// configLoader resolves the configuration for a subcommand.
type configLoader func() (*config.Config, error)
