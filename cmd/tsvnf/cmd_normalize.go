package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tsvnf/internal/normalize"
)

// normalizeCmd expands multi-valued fields into first normal form
var normalizeCmd = &cobra.Command{
	Use:   "normalize <input> <output>",
	Short: "Expand multi-valued fields into first normal form",
	Long: `Reads every record of the input file and expands each field holding
multiple sub-values (separated by the sub-value delimiter) into every
combination across columns. The resulting tuples are written without
duplicates, in order of first appearance.

A record with two sub-values in each of two columns expands to four
tuples; the cross product grows multiplicatively with every multi-valued
column.

Example:
  tsvnf normalize tagged.tsv flat.tsv`,
	Args: cobra.ExactArgs(2),
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	dialect := buildDialect()
	mirror := newMirror(dialect)

	recs, err := readRecords(args[0], dialect, mirror)
	if err != nil {
		return err
	}

	tuples := normalize.New(dialect, logger).Expand(recs)
	if err := writeRecords(args[1], dialect, mirror, tuples); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("normalization complete",
			zap.String("input", args[0]),
			zap.String("output", args[1]),
			zap.Int("records", len(recs)),
			zap.Int("tuples", len(tuples)))
	}
	return nil
}
