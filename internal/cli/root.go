// Package cli is the reviewlens command line. Commands drive a
// session.Session and print its views with the render package.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/dataset"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spacesedan/reviewlens/internal/session"
)

var (
	version = "dev"

	cfg = defaultConfig()

	datasetPath string
	verbose     bool

	// newSession is replaced in tests to inject a deterministic scorer.
	newSession = func() *session.Session {
		return session.New(nil, slog.Default(), dataset.WithSheet(cfg.DatasetSheet))
	}
)

var rootCmd = &cobra.Command{
	Use:   "reviewlens",
	Short: "Explore the sentiment of customer product reviews",
	Long: `reviewlens loads a CSV or XLSX file of customer reviews, scores the
sentiment of every review summary and charts the results per product.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logging.InitLogger("debug")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "file", "f", "", "dataset file (defaults to DATASET_PATH)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func defaultConfig() *config.Config {
	return &config.Config{
		DatasetPath: "data/customer_reviews.csv",
		LogLevel:    "info",
		PreviewRows: 20,
		ChartWidth:  40,
	}
}

// Execute runs the root command with c as configuration.
func Execute(c *config.Config, v string) error {
	if c != nil {
		cfg = c
	}
	if v != "" {
		version = v
	}

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err.Error())
		return err
	}
	return nil
}

func resolvePath() string {
	if datasetPath != "" {
		return datasetPath
	}
	return cfg.DatasetPath
}

// loadSession creates a session and loads the configured dataset into it.
func loadSession() (*session.Session, error) {
	s := newSession()
	if err := s.Load(resolvePath()); err != nil {
		return nil, describe(err)
	}
	return s, nil
}

// userError carries the message shown to the user for a core error.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string {
	return e.msg
}

func (e *userError) Unwrap() error {
	return e.err
}

// describe maps core errors to user-facing messages.
func describe(err error) error {
	var (
		notFound     *dataset.NotFoundError
		ioErr        *dataset.IOError
		schemaErr    *dataset.SchemaError
		precondition *dataset.PreconditionError
	)

	switch {
	case errors.As(err, &notFound):
		return &userError{fmt.Sprintf("dataset not found: make sure the file exists at %s", notFound.Path), err}
	case errors.As(err, &ioErr):
		return &userError{fmt.Sprintf("error loading dataset: %v", ioErr.Err), err}
	case errors.As(err, &schemaErr):
		return &userError{fmt.Sprintf("the dataset must include the columns: %s (missing: %s)",
			strings.Join(dataset.RequiredColumns, ", "), strings.Join(schemaErr.Missing, ", ")), err}
	case errors.As(err, &precondition):
		return &userError{"run the sentiment analysis first", err}
	case errors.Is(err, session.ErrNoDataset):
		return &userError{"please load the dataset first", err}
	default:
		return err
	}
}
