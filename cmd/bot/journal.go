package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rg/tgctx/internal/storage"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recently handled updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			store, err := storage.NewStorage(cfg.Storage.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer store.Close()

			return printJournal(cmd.OutOrStdout(), store, limit)
		},
	}

	cmd.Flags().Int("limit", 20, "Number of updates to show.")

	return cmd
}

func printJournal(out io.Writer, store *storage.Storage, limit int) error {
	records, err := store.GetRecentUpdates(limit)
	if err != nil {
		return err
	}
	counts, err := store.CountByType()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tUPDATE\tTYPE\tSUB-TYPE\tCHAT\tSTATUS\tDURATION\tERROR")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.UpdateID,
			rec.UpdateType,
			dash(rec.SubType),
			rec.ChatID,
			rec.Status,
			rec.Duration.Round(time.Millisecond),
			dash(rec.Error),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintln(out)
	for _, t := range types {
		fmt.Fprintf(out, "%s: %d\n", t, counts[t])
	}

	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
