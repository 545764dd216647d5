package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydrate-app/hydrate/internal/config"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := config.ResolveStorage()
		if err != nil {
			return fmt.Errorf("failed to locate settings directory: %w", err)
		}

		entries, err := config.ListHistory(storage)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println(styleLabel.Render("No reminders recorded yet."))
			return nil
		}

		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		// Newest first.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			when := e.ShownAt.Local().Format("2006-01-02 15:04:05")
			fmt.Printf("%s  %s\n", styleValue.Render(when), styleLabel.Render(e.Trigger))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
}
