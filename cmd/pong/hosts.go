package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wowjack/bevy-pong-clone/internal/registry"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List all available hosts",
	Long:  `Shows every host registered in this build. The window host needs -tags ebiten.`,
	Run:   runHosts,
}

func runHosts(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	hosts := registry.List()

	if len(hosts) == 0 {
		fmt.Fprintln(out, "No hosts available.")
		return
	}

	fmt.Fprintln(out, "Available hosts:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, h := range hosts {
		if len(h.Name) > maxNameLen {
			maxNameLen = len(h.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, h := range hosts {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, h.Name, h.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'pong play --host <name>' to play.")
}
