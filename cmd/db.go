package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirphl/ezpz-ti/internal/db"
	"github.com/amirphl/ezpz-ti/internal/db/conf"
	"github.com/amirphl/ezpz-ti/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) openStorage() (*db.Postgres, func(), error) {
	if a.cfg.DBConnStr == "" {
		return nil, nil, fmt.Errorf("no database configured, set --db-conn-str or EZPZ_DB_CONN_STR")
	}
	c, err := conf.Open(a.cfg.DBConnStr, a.cfg.DBMaxOpen, a.cfg.DBMaxIdle, a.cfg.DBTimeout)
	if err != nil {
		return nil, nil, err
	}
	store, err := db.New(c, db.Domains(a.cfg.Domains))
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	return store, func() { c.Close() }, nil
}

// importTable loads a CSV into store. It returns the number of rows saved.
func (a *app) importTable(ctx context.Context, store db.Storage, table, input string) (int, error) {
	f, err := readFrame(input, os.Stdin)
	if err != nil {
		return 0, err
	}
	a.recorder.AddRows(f.Height())

	switch table {
	case "postings":
		rows, err := db.PostingsFromFrame(f)
		if err != nil {
			return 0, err
		}
		return len(rows), store.SavePostings(ctx, rows)
	case "tool_results":
		rows, err := db.ToolResultsFromFrame(f)
		if err != nil {
			return 0, err
		}
		return len(rows), store.SaveToolResults(ctx, rows)
	}
	return 0, fmt.Errorf("unknown table %q, expected postings or tool_results", table)
}

func newDBCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the postings database",
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create the postings and tool_results tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeFn, err := a.openStorage()
			if err != nil {
				return err
			}
			defer closeFn()
			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}

	var table, input string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import rows from a CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeFn, err := a.openStorage()
			if err != nil {
				return err
			}
			defer closeFn()
			n, err := a.importTable(cmd.Context(), store, table, input)
			if err != nil {
				return err
			}
			utils.GetLogger().Info().Str("table", table).Int("rows", n).Msg("imported")
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "imported %d rows into %s\n", n, table)
			return nil
		},
	}
	importCmd.Flags().StringVar(&table, "table", "postings", "Target table: postings or tool_results")
	importCmd.Flags().StringVarP(&input, "input", "i", "", "CSV file to import")
	_ = importCmd.MarkFlagRequired("input")

	cmd.AddCommand(migrate, importCmd)
	return cmd
}
