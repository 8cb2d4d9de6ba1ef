// Package main implements tsvnf, a batch transformer for delimited text
// records. It ships two pipelines over the same record model: aggregate
// (pivot records by their first field) and normalize (expand multi-valued
// fields into first normal form).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tsvnf/internal/echo"
	"tsvnf/internal/record"
)

var (
	// Global flags
	verbose        bool
	noEcho         bool
	fieldDelim     string
	valueDelim     string
	addFieldDelims []string
	addValueDelims []string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tsvnf",
	Short: "Aggregate or normalize delimited text records",
	Long: `tsvnf transforms delimited text records in batch.

Records are lines of fields separated by the field delimiter (default:
tab). The first line read fixes the record width for the whole run;
shorter lines are padded with empty fields and longer lines truncated.

Two transformations are available:
  aggregate  - group records by their first field and fold every other
               column into a compound value, one output record per key
  normalize  - expand fields holding multiple sub-values (default
               separator ":") into every combination, first normal form

Both read the whole input before writing any output.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noEcho, "no-echo", false, "suppress the console echo of input and output lines")
	rootCmd.PersistentFlags().StringVar(&fieldDelim, "split", "", "replace the field delimiter (default: tab)")
	rootCmd.PersistentFlags().StringArrayVar(&addFieldDelims, "add-split", nil, "accept an additional field delimiter when splitting (repeatable)")
	rootCmd.PersistentFlags().StringVar(&valueDelim, "delim", "", "replace the sub-value delimiter (default: \":\")")
	rootCmd.PersistentFlags().StringArrayVar(&addValueDelims, "add-delim", nil, "accept an additional sub-value delimiter when splitting (repeatable)")

	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(normalizeCmd)
}

// buildDialect applies the delimiter flags on top of the default
// tab/colon dialect. Replacements run before additions so
// "--split , --add-split ;" accepts both "," and ";".
func buildDialect() *record.Dialect {
	d := record.Default()
	if fieldDelim != "" {
		d.ReplaceField(fieldDelim)
	}
	for _, lit := range addFieldDelims {
		d.AddField(lit)
	}
	if valueDelim != "" {
		d.ReplaceValue(valueDelim)
	}
	for _, lit := range addValueDelims {
		d.AddValue(lit)
	}
	return d
}

// newMirror returns the console mirror for a run, nil when echoing is
// suppressed.
func newMirror(dialect *record.Dialect) *echo.Mirror {
	if noEcho {
		return nil
	}
	return echo.New(os.Stdout, dialect.Field)
}

// readRecords reads and width-reconciles every record of the input file,
// echoing raw lines under an "input:" header.
func readRecords(path string, dialect *record.Dialect, mirror *echo.Mirror) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()

	mirror.Section("input")
	return record.NewReader(dialect, mirror, logger).ReadAll(f)
}

// writeRecords writes every record to the output file, echoing written
// lines under an "output:" header. On write failure a partial output file
// may remain.
func writeRecords(path string, dialect *record.Dialect, mirror *echo.Mirror, recs []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}

	mirror.Gap()
	mirror.Section("output")
	if err := record.NewWriter(dialect, mirror).WriteAll(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
