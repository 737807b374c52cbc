package main

import (
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/walksafe/seedgen/internal/dataset"
	"github.com/walksafe/seedgen/internal/export"
)

var (
	accCount   int
	accProfile string
)

var generateAccidentsCmd = &cobra.Command{
	Use:   "accidents",
	Short: "Generate an accident dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGenerateFlags(accCount); err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		asm, err := newAssembler(cfg, cat, resolveSeed(genSeed), clockwork.NewRealClock())
		if err != nil {
			return err
		}

		batch, err := asm.Accidents(dataset.Request{
			Count:       accCount,
			RealPercent: genRealPercent,
			Profile:     accProfile,
		})
		if err != nil {
			return err
		}

		path, err := writeOutput(cfg, "accidents", func(w io.Writer) error {
			if genFormat == "xlsx" {
				return export.AccidentsXLSX(w, batch.Records)
			}
			return export.AccidentsCSV(w, batch.Records)
		})
		if err != nil {
			return err
		}

		stats := dataset.SummarizeAccidents(batch.Records)
		printer.Printf("batch %s: %d accidents to %s\n", batch.ID, stats.Total, path)
		printer.Printf("  real %d, synthetic %d\n", stats.Real, stats.Synthetic)
		printer.Printf("  pedestrian %d, bicycle %d, severe %d\n", stats.Pedestrian, stats.Bicycle, stats.Severe)
		return nil
	},
}

func init() {
	generateAccidentsCmd.Flags().IntVar(&accCount, "count", 500, "number of records to generate")
	generateAccidentsCmd.Flags().StringVar(&accProfile, "profile", "balanced", "distribution profile")
	generateCmd.AddCommand(generateAccidentsCmd)
}
