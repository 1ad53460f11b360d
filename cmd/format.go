package main

import (
	"maps"

	"github.com/amirphl/ezpz-ti/internal/formatter"
	"github.com/spf13/cobra"
)

// formatterConfig is the built-in table with configured extensions replacing
// their defaults.
func formatterConfig(table map[string][][]string) (formatter.Config, error) {
	cfg := formatter.DefaultConfig()
	custom, err := formatter.FromTable(table)
	if err != nil {
		return nil, err
	}
	maps.Copy(cfg, custom)
	return cfg, nil
}

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <path>...",
		Short: "Run the configured formatter on files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := formatterConfig(a.cfg.Formatter)
			if err != nil {
				return err
			}
			f := formatter.New(cfg, nil)
			f.Stdout, f.Stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
			return f.FormatPaths(cmd.Context(), args)
		},
	}
}
