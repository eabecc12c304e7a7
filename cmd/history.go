package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvaldes/cribado/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.ResultRepo().Recent(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("Sin resultados guardados.")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %-34s  %2d/%2d  %s\n",
				rec.CreatedAt.Format("02/01/2006 15:04"),
				rec.BatteryName,
				rec.TotalScore, rec.MaxScore,
				rec.Interpretation)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of results to show (0 = all)")
}
