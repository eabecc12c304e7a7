package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvaldes/cribado/internal/app"
	"github.com/nvaldes/cribado/internal/battery"
	"github.com/nvaldes/cribado/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cribado",
	Short: "Baterías de cribado clínico en el terminal",
	Long: "Cribado — aplicación de terminal para administrar baterías de cribado\n" +
		"cognitivo y afectivo, puntuarlas e interpretar el resultado.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CRIBADO_DB env var)")
	rootCmd.PersistentFlags().StringSlice("battery", nil, "Path to a custom battery definition JSON file (repeatable)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CRIBADO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCustomBatteries registers every battery file passed via
// --battery before the UI builds its menu.
func loadCustomBatteries(cmd *cobra.Command) error {
	paths, _ := cmd.Flags().GetStringSlice("battery")
	for _, p := range paths {
		if _, err := battery.LoadFile(p); err != nil {
			return fmt.Errorf("load battery %s: %w", p, err)
		}
	}
	return nil
}

// runApp opens the store, registers custom batteries, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	if err := loadCustomBatteries(cmd); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(st.ResultRepo())
}
