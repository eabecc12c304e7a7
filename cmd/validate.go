package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvaldes/cribado/internal/battery"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Check a custom battery definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		b, err := battery.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid battery: %w", err)
		}
		fmt.Printf("OK: %s (%d ítems, puntuación máxima %d)\n",
			b.Name, len(b.Questions), b.MaxScore())
		return nil
	},
}
