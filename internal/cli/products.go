package cli

import (
	"github.com/spf13/cobra"

	"github.com/spacesedan/reviewlens/internal/dataset"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the products in the dataset",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	for _, p := range dataset.ProductOptions(s.Dataset()) {
		cmd.Println(p)
	}
	return nil
}
