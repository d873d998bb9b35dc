package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-arcade/internal/platform/tui"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded sessions",
	Long: `List recorded sessions, newest first. Enter plays the selected
session, d deletes it.

Examples:
  arcade replays
  arcade replays --db ./replays.db`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func runReplays(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	info, picked, err := tui.RunReplays(store)
	if err != nil || !picked {
		return err
	}
	return playback(store, info, cfg, false)
}
