package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/reviewlens/internal/dataset"
	"github.com/spacesedan/reviewlens/internal/metrics"
	"github.com/spacesedan/reviewlens/internal/render"
	"github.com/spacesedan/reviewlens/internal/session"
)

var (
	analyzeProduct string
	analyzeLimit   int
	analyzeJSON    bool
	analyzeMetrics bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score review sentiment and chart it per product",
	Long: `Loads the dataset, scores the sentiment of every review summary and
labels it Positive, Negative or Neutral. Prints the reviews together with the
average sentiment per product and the distribution of labels.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeProduct, "product", "p", "", "only show reviews for this product")
	analyzeCmd.Flags().IntVarP(&analyzeLimit, "limit", "n", -1, "maximum rows to print (defaults to PREVIEW_ROWS, 0 for all)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the view as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeMetrics, "metrics", false, "print collected metrics to stderr")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	stats, err := s.Analyze()
	if err != nil {
		return describe(err)
	}

	view, err := s.View(analyzeProduct)
	if err != nil {
		return describe(err)
	}

	if analyzeJSON {
		err = outputViewJSON(cmd, view, limitOr(analyzeLimit))
	} else {
		cmd.Printf("Sentiment analysis completed: %d reviews scored\n\n", stats.Rows)
		printView(cmd, view, limitOr(analyzeLimit))
		printCharts(cmd, view)
	}
	if err != nil {
		return err
	}

	if analyzeMetrics {
		return metrics.Dump(cmd.ErrOrStderr())
	}
	return nil
}

func printView(cmd *cobra.Command, view *session.View, limit int) {
	cmd.Printf("Reviews for %s (%d)\n", view.Product, view.Rows.Len())
	if view.Rows.Len() == 0 {
		cmd.Println("No reviews found.")
		cmd.Println()
		return
	}
	cmd.Print(render.Table(view.Rows, limit))
	cmd.Println()
}

func printCharts(cmd *cobra.Command, view *session.View) {
	if !view.Analyzed() {
		return
	}
	cmd.Print(render.AverageChart(view.Averages, cfg.ChartWidth))
	cmd.Println()
	cmd.Print(render.DistributionChart(view.Counts, cfg.ChartWidth))
}

type viewJSON struct {
	Product  string                   `json:"product"`
	Total    int                      `json:"total"`
	Columns  []string                 `json:"columns"`
	Rows     [][]string               `json:"rows"`
	Averages []dataset.ProductAverage `json:"averages"`
	Counts   map[string]int           `json:"counts"`
}

func outputViewJSON(cmd *cobra.Command, view *session.View, limit int) error {
	rows := view.Rows.Records()
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	counts := make(map[string]int, len(view.Counts))
	for label, n := range view.Counts {
		counts[label.String()] = n
	}

	data, err := json.MarshalIndent(viewJSON{
		Product:  view.Product,
		Total:    view.Rows.Len(),
		Columns:  view.Rows.Columns,
		Rows:     rows,
		Averages: view.Averages,
		Counts:   counts,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
