package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tsvnf/internal/aggregate"
)

// aggregateCmd pivots records by their first field
var aggregateCmd = &cobra.Command{
	Use:   "aggregate <input> <output>",
	Short: "Group records by first field and fold columns into compound values",
	Long: `Reads every record of the input file, groups them by the value of
their first field, and writes one record per distinct key in ascending
key order. Each remaining column is folded across the group into a single
compound value, segments joined by the sub-value delimiter.

Example:
  tsvnf aggregate items.tsv grouped.tsv`,
	Args: cobra.ExactArgs(2),
	RunE: runAggregate,
}

func runAggregate(cmd *cobra.Command, args []string) error {
	dialect := buildDialect()
	mirror := newMirror(dialect)

	recs, err := readRecords(args[0], dialect, mirror)
	if err != nil {
		return err
	}

	folded := aggregate.New(dialect, logger).Fold(recs)
	if err := writeRecords(args[1], dialect, mirror, folded); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("aggregation complete",
			zap.String("input", args[0]),
			zap.String("output", args[1]),
			zap.Int("records", len(recs)),
			zap.Int("groups", len(folded)))
	}
	return nil
}
