package cli

import (
	"github.com/spf13/cobra"
)

var (
	showProduct string
	showLimit   int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the reviews in the dataset",
	Long: `Loads the dataset and prints its reviews, optionally filtered to a
single product. No sentiment analysis is run.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showProduct, "product", "p", "", "only show reviews for this product")
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", -1, "maximum rows to print (defaults to PREVIEW_ROWS, 0 for all)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	view, err := s.View(showProduct)
	if err != nil {
		return describe(err)
	}

	printView(cmd, view, limitOr(showLimit))
	cmd.Println("Run `reviewlens analyze` to generate charts.")
	return nil
}

func limitOr(limit int) int {
	if limit < 0 {
		return cfg.PreviewRows
	}
	return limit
}
