package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	modes := registry.List()

	maxIDLen, maxTitleLen := len("ID"), len("Title")
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
		maxTitleLen = max(maxTitleLen, len(m.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, m := range modes {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, m.ID, maxTitleLen, m.Title, m.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'bullethell play <id>' or 'bullethell window <id>' to play.")
}
